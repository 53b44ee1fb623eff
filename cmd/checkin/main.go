// Command checkin manages a seating grid and per-seat check-in status from
// the terminal. The layout lives in a JSON file next to the binary unless
// overridden; attendance state lives in a sidecar snapshot beside it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andeibuite/checkin/internal/config"
	"github.com/andeibuite/checkin/internal/ui"
)

var (
	tablePath  string
	jsonOutput bool
	noColor    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "checkin",
	Short:         "Seating grid and check-in tracker",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if tablePath != "" {
			cfg.TablePath = tablePath
		}
		if noColor || cfg.NoColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", "", "layout file (default: settings or table.conf.json next to the binary)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(rowCmd)
	rootCmd.AddCommand(colCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(uncheckCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
