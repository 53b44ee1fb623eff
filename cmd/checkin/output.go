package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/andeibuite/checkin/internal/model"
	"github.com/andeibuite/checkin/internal/store"
)

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// cellJSON is the per-cell shape for `show --json`.
type cellJSON struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Kind   string `json:"kind"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

func printTableJSON(table *model.Table, book *model.AttendanceBook) error {
	out := struct {
		RowCount    int        `json:"row_count"`
		ColumnCount int        `json:"column_count"`
		Cells       []cellJSON `json:"cells"`
	}{
		RowCount:    table.RowCount(),
		ColumnCount: table.ColumnCount(),
	}

	for position := range table.Positions() {
		kind, _ := table.KindAt(position)
		cell := cellJSON{X: position.X, Y: position.Y, Kind: kind.String()}
		if subject, ok := table.SubjectAt(position); ok {
			cell.Name = subject.Name
		}
		if status, ok := book.StatusAt(position); ok {
			cell.Status = status.String()
		}
		out.Cells = append(out.Cells, cell)
	}

	return printJSON(out)
}

func printSessionsTable(sessions []*store.Session) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTAKEN AT\tCHECKED\tUNCHECKED\tMARKED\tCOMPLETE")
	for _, s := range sessions {
		percent := 0
		if s.ActiveTotal > 0 {
			percent = (s.Checked + s.Marked) * 100 / s.ActiveTotal
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d%%\n",
			s.ID,
			s.TakenAt.Format("2006-01-02 15:04:05"),
			s.Checked,
			s.Unchecked,
			s.Marked,
			percent,
		)
	}
	w.Flush()
}
