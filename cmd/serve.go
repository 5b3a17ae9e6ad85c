package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-grouper/internal/config"
	"github.com/kozaktomas/photo-grouper/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the relationship viewer web server",
	Long: `Start the Photo Grouper web server.
The server provides a read-only API for browsing the computed
relationship sets: the file index, the time/location/event clusters
and run statistics.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")
	serveCmd.Flags().String("results-dir", "", "Results directory (overrides RESULTS_DIR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if dir := mustGetString(cmd, "results-dir"); dir != "" {
		cfg.Paths.ResultsDirectory = dir
	}
	if cfg.Paths.ResultsDirectory == "" {
		return errors.New("results directory is required (--results-dir or RESULTS_DIR)")
	}

	server := web.NewServer(cfg, mustGetInt(cmd, "port"), mustGetString(cmd, "host"))

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-sigChan:
		fmt.Println("\nReceived interrupt signal...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
