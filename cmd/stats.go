package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-grouper/internal/config"
	"github.com/kozaktomas/photo-grouper/internal/relationship"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics of the current relationship sets",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("results-dir", "", "Results directory (overrides RESULTS_DIR)")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if dir := mustGetString(cmd, "results-dir"); dir != "" {
		cfg.Paths.ResultsDirectory = dir
	}
	if cfg.Paths.ResultsDirectory == "" {
		return errors.New("results directory is required (--results-dir or RESULTS_DIR)")
	}

	sets, err := relationship.Read(filepath.Join(cfg.Paths.ResultsDirectory, relationship.FileName))
	if err != nil {
		return err
	}

	fmt.Printf("Thresholds: %gs / %gkm\n", sets.Thresholds.TimeSeconds, sets.Thresholds.LocationKm)
	fmt.Println()
	fmt.Printf("Total files: %d\n", sets.Statistics.TotalFiles)
	fmt.Printf("Files with timestamp: %d\n", sets.Statistics.FilesWithTimestamp)
	fmt.Printf("Files with geotag: %d\n", sets.Statistics.FilesWithGeotag)
	fmt.Printf("Time sets (T'): %d\n", sets.Statistics.TimeSets)
	fmt.Printf("Location sets (L'): %d\n", sets.Statistics.LocationSets)
	fmt.Printf("Event sets (E'): %d\n", sets.Statistics.EventSets)

	return nil
}
