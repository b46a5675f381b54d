package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagData    string
	flagColor   string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:           "similardocs",
	Short:         "similardocs doctor directory server",
	Long:          "Serves a doctor directory page and JSON API from data/doctors.json, and queries the same file offline.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "doctor list (default: data/doctors.json under the working directory)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(configCmd)
}
