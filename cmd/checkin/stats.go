package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andeibuite/checkin/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attendance statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := loadTable()
		book := loadBook(table)
		stats := book.Statistics(table)

		if jsonOutput {
			return printJSON(stats)
		}

		fmt.Println(ui.RenderAccent("Attendance"))
		fmt.Printf("Checked:   %d\n", stats.Checked)
		fmt.Printf("Unchecked: %d\n", stats.Unchecked)
		fmt.Printf("Marked:    %d\n", stats.Marked)
		fmt.Printf("Seats:     %d active, %d blocked (%d cells)\n",
			stats.ActiveTotal, stats.BlockedTotal, stats.TotalCells())
		fmt.Printf("Complete:  %d%%\n", stats.CompletedRatioPercent())
		return nil
	},
}
