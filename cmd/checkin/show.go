package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andeibuite/checkin/internal/model"
	"github.com/andeibuite/checkin/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the seating grid",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		modeFlag, _ := cmd.Flags().GetString("mode")
		mode := model.Mode(modeFlag)
		if !mode.IsValid() {
			return fmt.Errorf("invalid mode %q (check-in or edit)", modeFlag)
		}

		table := loadTable()
		book := loadBook(table)
		if jsonOutput {
			return printTableJSON(table, book)
		}

		printGrid(table, book, mode)
		return nil
	},
}

func init() {
	showCmd.Flags().String("mode", model.ModeCheckIn.String(), "render mode: check-in or edit")
}

// printGrid writes the table as an aligned grid. Check-in mode colors
// occupants by status; edit mode spells out the structure of each cell.
// Labels are truncated when the grid would not fit the terminal.
func printGrid(table *model.Table, book *model.AttendanceBook, mode model.Mode) {
	maxLabel := 24
	if columns := table.ColumnCount(); columns > 0 {
		if budget := ui.Width(120)/columns - 4; budget < maxLabel {
			maxLabel = max(budget, 4)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprint(w, " ")
	for x := 0; x < table.ColumnCount(); x++ {
		fmt.Fprintf(w, "\t%s", ui.RenderMuted(fmt.Sprintf("c%d", x)))
	}
	fmt.Fprintln(w)

	row := -1
	for position := range table.Positions() {
		if position.Y != row {
			if row >= 0 {
				fmt.Fprintln(w)
			}
			row = position.Y
			fmt.Fprint(w, ui.RenderMuted(fmt.Sprintf("r%d", row)))
		}
		fmt.Fprintf(w, "\t%s", renderCell(table, book, position, mode, maxLabel))
	}
	fmt.Fprintln(w)
	w.Flush()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func renderCell(table *model.Table, book *model.AttendanceBook, position model.Position, mode model.Mode, maxLabel int) string {
	subject, explicit := table.SubjectAt(position)

	if mode == model.ModeEdit {
		switch {
		case !explicit:
			return "."
		case subject.IsTransparent():
			return "~"
		case subject.IsBlocked():
			return ui.RenderMuted("#" + truncate(subject.Name, maxLabel))
		default:
			return truncate(subject.Name, maxLabel)
		}
	}

	if explicit && subject.IsTransparent() {
		return " "
	}
	if explicit && subject.IsBlocked() {
		return ui.RenderMuted("[" + truncate(subject.Name, maxLabel) + "]")
	}

	label := "·"
	if explicit && subject.Name != "" {
		label = truncate(subject.Name, maxLabel)
	}
	status, ok := book.StatusAt(position)
	if !ok {
		status = model.StatusUnchecked
	}
	return ui.RenderStatus(label, status)
}
