package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-grouper/internal/config"
	"github.com/kozaktomas/photo-grouper/internal/constants"
	"github.com/kozaktomas/photo-grouper/internal/database"
	"github.com/kozaktomas/photo-grouper/internal/database/postgres"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect recorded clustering runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded clustering runs",
	RunE:  runRunsList,
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)

	runsListCmd.Flags().Int("limit", constants.DefaultRunsLimit, "Maximum number of runs to show")
}

func runRunsList(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cfg.Database.URL == "" {
		return errors.New("DATABASE_URL environment variable is required")
	}

	if !database.IsInitialized() {
		if err := postgres.Initialize(&cfg.Database); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	store, err := database.GetRunStore(cmd.Context())
	if err != nil {
		return err
	}

	runs, err := store.List(cmd.Context(), mustGetInt(cmd, "limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %s\n", run.FinishedAt.Format("2006-01-02 15:04:05"), run.ID)
		fmt.Printf("  Snapshot: %s\n", run.SnapshotPath)
		fmt.Printf("  Thresholds: %gs / %gkm\n", run.TimeThresholdSeconds, run.LocationThresholdKm)
		fmt.Printf("  Files: %d (%d with timestamp, %d with geotag)\n",
			run.TotalFiles, run.FilesWithTimestamp, run.FilesWithGeotag)
		fmt.Printf("  Sets: T'=%d L'=%d E'=%d\n", run.TimeSets, run.LocationSets, run.EventSets)
		fmt.Println()
	}

	return nil
}
