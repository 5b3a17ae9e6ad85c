package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "photo-grouper",
	Short: "A CLI tool for grouping media files by capture time and place",
	Long: `Photo Grouper is the relationship clustering stage of a media organizing
pipeline. It reads the consolidated metadata snapshot produced by earlier
stages and computes sets of files that were plausibly captured at the same
time, at the same place, or both (candidate events).`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
