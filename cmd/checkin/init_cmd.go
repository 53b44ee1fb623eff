package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andeibuite/checkin/internal/model"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a layout file seeded with a random 5x6 table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(cfg.TablePath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.TablePath)
		}

		table := model.DefaultTableFromRoster(cfg.Roster)
		if err := saveTable(table); err != nil {
			return err
		}
		if err := saveBook(table, model.NewAttendanceBook(table)); err != nil {
			return err
		}
		fmt.Printf("Created %s (%dx%d)\n", cfg.TablePath, table.RowCount(), table.ColumnCount())
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing layout")
}
