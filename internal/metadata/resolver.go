package metadata

import "time"

// timestampLayouts are the formats the consolidation stage is known to emit.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006:01:02 15:04:05", // EXIF DateTimeOriginal
}

// Resolver picks the canonical timestamp and geotag for a file by scanning
// sources in a fixed precedence order. Only the first entry of each source's
// list is consulted; a null value falls through to the next source.
type Resolver struct {
	timestampSources []string
	geotagSources    []string
}

// NewResolver creates a resolver with explicit source precedence lists.
func NewResolver(timestampSources, geotagSources []string) *Resolver {
	return &Resolver{
		timestampSources: timestampSources,
		geotagSources:    geotagSources,
	}
}

// firstEntry returns the first entry of the named source's list, if any.
func firstEntry(b Bundle, source string) (SourceEntry, bool) {
	entries := b[source]
	if len(entries) == 0 {
		return SourceEntry{}, false
	}
	return entries[0], true
}

// ResolveTimestamp returns the canonical capture time for a file.
// A timestamp string that matches none of the known layouts counts as
// absent for its source; absence overall is not an error.
func (r *Resolver) ResolveTimestamp(b Bundle) (time.Time, bool) {
	for _, source := range r.timestampSources {
		entry, ok := firstEntry(b, source)
		if !ok || entry.Timestamp == nil {
			continue
		}
		if ts, ok := parseTimestamp(*entry.Timestamp); ok {
			return ts, true
		}
	}
	return time.Time{}, false
}

// ResolveGeotag returns the canonical capture location for a file.
func (r *Resolver) ResolveGeotag(b Bundle) (Geotag, bool) {
	for _, source := range r.geotagSources {
		entry, ok := firstEntry(b, source)
		if !ok || entry.Geotag == nil {
			continue
		}
		return *entry.Geotag, true
	}
	return Geotag{}, false
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
