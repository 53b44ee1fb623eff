package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andeibuite/checkin/internal/model"
)

var checkCmd = newStatusCmd("check", "Check in a seat", model.StatusChecked)
var markCmd = newStatusCmd("mark", "Mark a seat as excused", model.StatusMarked)
var uncheckCmd = newStatusCmd("uncheck", "Reset a seat to unchecked", model.StatusUnchecked)

// newStatusCmd builds one of the check/mark/uncheck commands. The seat is
// addressed either by "<column> <row>" or by occupant name.
func newStatusCmd(use, short string, status model.AttendanceStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name> | <column> <row>",
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := loadTable()
			book := loadBook(table)

			position, err := resolveSeat(table, args)
			if err != nil {
				return err
			}
			if !book.SetStatus(table, position, status) {
				return fmt.Errorf("seat (%d,%d) unchanged: not an active seat or already %s",
					position.X, position.Y, status)
			}
			return saveBook(table, book)
		},
	}
}
