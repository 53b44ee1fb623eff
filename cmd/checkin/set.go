package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andeibuite/checkin/internal/model"
)

var setCmd = &cobra.Command{
	Use:   "set <column> <row> [name]",
	Short: "Assign a seat, block, or transparent placeholder to a cell",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		position, err := parsePosition(args[0], args[1])
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 3 {
			name = args[2]
		}

		blockLabel, _ := cmd.Flags().GetString("block")
		transparent, _ := cmd.Flags().GetBool("transparent")

		var subject model.Subject
		switch {
		case transparent:
			subject = model.Transparent()
		case cmd.Flags().Changed("block"):
			subject = model.Block(blockLabel)
		case name == "":
			return fmt.Errorf("a name is required unless --block or --transparent is given")
		default:
			subject = model.Occupied(name)
		}

		return applyCellEdit(position, &subject)
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear <column> <row>",
	Short: "Revert a cell to an empty active seat",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		position, err := parsePosition(args[0], args[1])
		if err != nil {
			return err
		}
		return applyCellEdit(position, nil)
	},
}

func init() {
	setCmd.Flags().String("block", "", "make the cell an inert block with this label")
	setCmd.Flags().Bool("transparent", false, "make the cell a transparent placeholder")
}

// applyCellEdit mutates one cell, reconciles attendance against the new
// structure, and persists both files.
func applyCellEdit(position model.Position, subject *model.Subject) error {
	table := loadTable()
	book := loadBook(table)

	if !table.SetSubject(position, subject) {
		return fmt.Errorf("cell (%d,%d) unchanged: out of bounds or already set", position.X, position.Y)
	}
	book.Reconcile(table)

	if err := saveTable(table); err != nil {
		return err
	}
	return saveBook(table, book)
}
