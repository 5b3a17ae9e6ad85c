package cluster

// collectStatistics aggregates the diagnostic counters attached to the
// output document. Nothing downstream depends on these for correctness.
func collectStatistics(files []FileRecord, result *Result) Statistics {
	stats := Statistics{
		TotalFiles:   len(files),
		TimeSets:     len(result.TimeClasses),
		LocationSets: len(result.LocationClasses),
		EventSets:    len(result.EventClasses),
	}
	for _, f := range files {
		if f.TakenAt != nil {
			stats.FilesWithTimestamp++
		}
		if f.Geotag != nil {
			stats.FilesWithGeotag++
		}
	}
	return stats
}
