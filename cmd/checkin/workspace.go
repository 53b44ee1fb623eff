package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/andeibuite/checkin/internal/model"
	"github.com/andeibuite/checkin/internal/tablefile"
)

// attendancePath is the sidecar snapshot next to the layout file.
func attendancePath(layout string) string {
	return layout + ".attendance.json"
}

// loadTable reads the layout, substituting a seeded default when the file is
// missing or unreadable. That fallback is deliberate caller policy; the
// codec itself never defaults.
func loadTable() *model.Table {
	if _, err := os.Stat(cfg.TablePath); err != nil {
		return model.DefaultTableFromRoster(cfg.Roster)
	}
	table, err := tablefile.Load(cfg.TablePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load layout %s: %v, using default table\n", cfg.TablePath, err)
		return model.DefaultTableFromRoster(cfg.Roster)
	}
	return table
}

func saveTable(table *model.Table) error {
	return tablefile.Save(cfg.TablePath, table)
}

// loadBook rebuilds the attendance book from the sidecar snapshot, if any.
func loadBook(table *model.Table) *model.AttendanceBook {
	book := model.NewAttendanceBook(table)
	path := attendancePath(cfg.TablePath)
	if _, err := os.Stat(path); err != nil {
		return book
	}
	data, err := tablefile.LoadSnapshot(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load attendance %s: %v, starting fresh\n", path, err)
		return book
	}
	data.Apply(table, book)
	return book
}

func saveBook(table *model.Table, book *model.AttendanceBook) error {
	return tablefile.SaveSnapshot(attendancePath(cfg.TablePath), table, book)
}

// parsePosition converts two argument strings into a Position.
func parsePosition(xArg, yArg string) (model.Position, error) {
	x, err := strconv.Atoi(xArg)
	if err != nil {
		return model.Position{}, fmt.Errorf("invalid column %q", xArg)
	}
	y, err := strconv.Atoi(yArg)
	if err != nil {
		return model.Position{}, fmt.Errorf("invalid row %q", yArg)
	}
	return model.Position{X: x, Y: y}, nil
}

// resolveSeat accepts either "<x> <y>" or a single occupant name and returns
// the seat position. Name lookup walks the table in row-major order and
// picks the first occupied match.
func resolveSeat(table *model.Table, args []string) (model.Position, error) {
	if len(args) == 2 {
		return parsePosition(args[0], args[1])
	}

	name := args[0]
	for position := range table.Positions() {
		subject, ok := table.SubjectAt(position)
		if ok && subject.Kind == model.CellActive && subject.Name == name {
			return position, nil
		}
	}
	return model.Position{}, fmt.Errorf("no seat occupied by %q", name)
}
