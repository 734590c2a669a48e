package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "digest",
	Short:         "Turn YouTube lectures into structured study summaries",
	Long:          "digest fetches a video's transcript and asks a Gemini model for an enriched study summary with Overview, Detailed Explanation and Extra Notes sections.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (defaults plus environment when empty)")
	rootCmd.AddCommand(serveCmd, summarizeCmd, watchCmd, modelsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
