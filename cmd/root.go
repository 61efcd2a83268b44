package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trep/trep/internal/app"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "trep",
	Short: "trep - a table-based time report for came/went tracking",
	Long: `trep shows daily came/went times, computed totals and notes in an
interactive table, paged by day, week, month or a window around a day.
Records and session state are stored as plain JSON files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApplication(configPath)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		return application.Run()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "trep.yaml", "path to the configuration file")
}
