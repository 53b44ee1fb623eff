package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/andeibuite/checkin/internal/idgen"
	"github.com/andeibuite/checkin/internal/store"
	"github.com/andeibuite/checkin/internal/store/postgres"
	"github.com/andeibuite/checkin/internal/tablefile"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the shareable check-in report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := loadTable()
		book := loadBook(table)

		now := time.Now()
		report := book.ExportText(table, now)
		fmt.Println(report)

		// Archive the session when a database is configured.
		if cfg.DatabaseURL == "" {
			return nil
		}
		archive, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open session archive: %w", err)
		}
		defer archive.Close()

		id, err := idgen.Generate()
		if err != nil {
			return err
		}
		stats := book.Statistics(table)
		session := &store.Session{
			ID:           id,
			TakenAt:      now,
			Checked:      stats.Checked,
			Unchecked:    stats.Unchecked,
			Marked:       stats.Marked,
			ActiveTotal:  stats.ActiveTotal,
			BlockedTotal: stats.BlockedTotal,
			Report:       report,
		}
		if err := archive.RecordSession(cmd.Context(), session); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "archived session %s\n", id)
		return nil
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <path>",
	Short: "Write the attendance snapshot to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := loadTable()
		book := loadBook(table)
		return tablefile.SaveSnapshot(args[0], table, book)
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List archived check-in sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("no session archive configured (set CHECKIN_DATABASE_URL)")
		}
		limit, _ := cmd.Flags().GetInt("limit")

		archive, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open session archive: %w", err)
		}
		defer archive.Close()

		sessions, err := archive.ListSessions(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(sessions)
		}
		printSessionsTable(sessions)
		return nil
	},
}

func init() {
	sessionsCmd.Flags().Int("limit", 20, "maximum number of sessions to list")
}
