package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andeibuite/checkin/internal/model"
)

var rowCmd = &cobra.Command{
	Use:   "row",
	Short: "Add or remove table rows",
}

var colCmd = &cobra.Command{
	Use:   "col",
	Short: "Add or remove table columns",
}

func init() {
	rowCmd.AddCommand(
		&cobra.Command{
			Use:   "add",
			Short: "Append one row at the bottom",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return applyResize(func(t *model.Table) bool { t.AddRow(); return true })
			},
		},
		&cobra.Command{
			Use:   "remove <index>",
			Short: "Remove the row at a zero-based index",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid row index %q", args[0])
				}
				return applyResize(func(t *model.Table) bool { return t.RemoveRow(index) })
			},
		},
	)

	colCmd.AddCommand(
		&cobra.Command{
			Use:   "add",
			Short: "Append one column on the right",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return applyResize(func(t *model.Table) bool { t.AddColumn(); return true })
			},
		},
		&cobra.Command{
			Use:   "remove <index>",
			Short: "Remove the column at a zero-based index",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid column index %q", args[0])
				}
				return applyResize(func(t *model.Table) bool { return t.RemoveColumn(index) })
			},
		},
	)
}

// applyResize runs one structural mutation, reconciles attendance, and
// persists on success. Refused mutations surface as errors without touching
// either file.
func applyResize(mutate func(*model.Table) bool) error {
	table := loadTable()
	book := loadBook(table)

	if !mutate(table) {
		return fmt.Errorf("refused: index out of range or table would drop below 1x1")
	}
	book.Reconcile(table)

	if err := saveTable(table); err != nil {
		return err
	}
	if err := saveBook(table, book); err != nil {
		return err
	}
	fmt.Printf("Table is now %dx%d\n", table.RowCount(), table.ColumnCount())
	return nil
}
