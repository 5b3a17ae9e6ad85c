package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-grouper/internal/cluster"
	"github.com/kozaktomas/photo-grouper/internal/config"
	"github.com/kozaktomas/photo-grouper/internal/database"
	"github.com/kozaktomas/photo-grouper/internal/database/postgres"
	"github.com/kozaktomas/photo-grouper/internal/metadata"
	"github.com/kozaktomas/photo-grouper/internal/relationship"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Compute time/location relationship sets",
	Long: `Compute the T', L' and E' relationship sets from the consolidated
metadata snapshot in the results directory, then write
relationship_sets.json atomically next to it.`,
	RunE: runCluster,
}

func init() {
	rootCmd.AddCommand(clusterCmd)

	clusterCmd.Flags().String("config", "", "Path to the pipeline JSON config file")
	clusterCmd.Flags().String("results-dir", "", "Results directory (overrides config and RESULTS_DIR)")
	clusterCmd.Flags().Float64("time-threshold", 0, "Time proximity threshold in seconds (overrides config)")
	clusterCmd.Flags().Float64("location-threshold", 0, "Location proximity threshold in km (overrides config)")
	clusterCmd.Flags().Int("concurrency", 1, "Number of parallel workers for the pairwise scan")
	clusterCmd.Flags().Bool("quiet", false, "Suppress the progress bar")
}

func runCluster(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if configPath := mustGetString(cmd, "config"); configPath != "" {
		defaulted, err := cfg.ApplyPipelineFile(configPath)
		if err != nil {
			return err
		}
		for _, field := range defaulted {
			logger.Warn("clustering setting missing from pipeline config, using default", slog.String("field", field))
		}
	}

	if dir := mustGetString(cmd, "results-dir"); dir != "" {
		cfg.Paths.ResultsDirectory = dir
	}
	if cmd.Flags().Changed("time-threshold") {
		cfg.Clustering.TimeThresholdSeconds = mustGetFloat64(cmd, "time-threshold")
	}
	if cmd.Flags().Changed("location-threshold") {
		cfg.Clustering.LocationThresholdKm = mustGetFloat64(cmd, "location-threshold")
	}
	concurrency := mustGetInt(cmd, "concurrency")
	quiet := mustGetBool(cmd, "quiet")

	if cfg.Paths.ResultsDirectory == "" {
		return errors.New("results directory is required (--results-dir, RESULTS_DIR or pipeline config)")
	}

	// Set up context with signal handling for graceful cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal...")
		cancel()
	}()

	snapshotPath := filepath.Join(cfg.Paths.ResultsDirectory, metadata.SnapshotFileName)
	snap, err := metadata.Load(snapshotPath)
	if err != nil {
		logger.Error("failed to load metadata snapshot", slog.String("error", err.Error()))
		return err
	}

	defaults := config.LoadDefaults()
	resolver := metadata.NewResolver(defaults.Sources.Timestamp, defaults.Sources.Geotag)
	records := cluster.BuildRecords(snap, resolver)

	fmt.Printf("Clustering %d files\n", len(records))
	fmt.Printf("Thresholds: %gs / %gkm\n", cfg.Clustering.TimeThresholdSeconds, cfg.Clustering.LocationThresholdKm)
	if concurrency > 1 {
		fmt.Printf("Concurrency: %d workers\n", concurrency)
	}

	opts := cluster.Options{
		Concurrency: concurrency,
		Logger:      logger,
	}
	if !quiet {
		bar := progressbar.NewOptions(len(records),
			progressbar.OptionSetDescription("Scanning pairs"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionFullWidth(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
		opts.OnProgress = func(p cluster.ProgressInfo) {
			_ = bar.Set(p.Current)
		}
	}

	thresholds := cluster.Thresholds{
		TimeSeconds: cfg.Clustering.TimeThresholdSeconds,
		LocationKm:  cfg.Clustering.LocationThresholdKm,
	}

	startedAt := time.Now().UTC()
	result, err := cluster.New(thresholds, opts).Run(ctx, records)
	if err != nil {
		logger.Error("clustering failed", slog.String("error", err.Error()))
		return err
	}
	finishedAt := time.Now().UTC()

	outputPath := filepath.Join(cfg.Paths.ResultsDirectory, relationship.FileName)
	sets := relationship.FromResult(result, thresholds)
	if err := relationship.Write(outputPath, sets); err != nil {
		logger.Error("failed to write relationship sets", slog.String("error", err.Error()))
		return err
	}

	fmt.Printf("\nFiles with timestamp: %d\n", result.Stats.FilesWithTimestamp)
	fmt.Printf("Files with geotag: %d\n", result.Stats.FilesWithGeotag)
	fmt.Printf("Time sets (T'): %d\n", result.Stats.TimeSets)
	fmt.Printf("Location sets (L'): %d\n", result.Stats.LocationSets)
	fmt.Printf("Event sets (E'): %d\n", result.Stats.EventSets)
	fmt.Printf("Written: %s\n", outputPath)

	recordRun(ctx, cfg, logger, database.Run{
		ID:                   uuid.NewString(),
		SnapshotPath:         snapshotPath,
		StartedAt:            startedAt,
		FinishedAt:           finishedAt,
		TimeThresholdSeconds: thresholds.TimeSeconds,
		LocationThresholdKm:  thresholds.LocationKm,
		TotalFiles:           result.Stats.TotalFiles,
		FilesWithTimestamp:   result.Stats.FilesWithTimestamp,
		FilesWithGeotag:      result.Stats.FilesWithGeotag,
		TimeSets:             result.Stats.TimeSets,
		LocationSets:         result.Stats.LocationSets,
		EventSets:            result.Stats.EventSets,
	})

	return nil
}

// recordRun saves the run history entry when a database is configured.
// Failures are logged only; the clustering output is already on disk.
func recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, run database.Run) {
	if cfg.Database.URL == "" {
		return
	}

	if !database.IsInitialized() {
		if err := postgres.Initialize(&cfg.Database); err != nil {
			logger.Warn("failed to initialize run history database", slog.String("error", err.Error()))
			return
		}
	}

	store, err := database.GetRunStore(ctx)
	if err != nil {
		logger.Warn("run history unavailable", slog.String("error", err.Error()))
		return
	}
	if err := store.Save(ctx, run); err != nil {
		logger.Warn("failed to record run", slog.String("error", err.Error()))
	}
}
