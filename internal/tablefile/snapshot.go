package tablefile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/andeibuite/checkin/internal/model"
)

// SaveData is the attendance snapshot document. Attendances lists every
// active seat that is past unchecked, in table order; Marked holds the
// indices of those attendances that are excused rather than checked in.
type SaveData struct {
	Table       TableSave        `json:"table"`
	Attendances []AttendanceSave `json:"attendances"`
	Marked      []int            `json:"marked"`
}

// TableSave carries the table dimensions of the snapshot.
//
// The colomn_count spelling follows the external JSON contract and must not
// be corrected.
type TableSave struct {
	ColumnCount int `json:"colomn_count"`
	RowCount    int `json:"row_count"`
}

// AttendanceSave is one check-in record: the occupant's name and seat.
type AttendanceSave struct {
	Name     string       `json:"name"`
	Position PositionSave `json:"position"`
}

// PositionSave is a zero-based position in the snapshot payload.
type PositionSave struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BuildSnapshot captures the book's non-pending statuses against the table.
func BuildSnapshot(table *model.Table, book *model.AttendanceBook) SaveData {
	data := SaveData{
		Table: TableSave{
			ColumnCount: table.ColumnCount(),
			RowCount:    table.RowCount(),
		},
		Attendances: []AttendanceSave{},
		Marked:      []int{},
	}

	for position := range table.Positions() {
		status, ok := book.StatusAt(position)
		if !ok || status == model.StatusUnchecked {
			continue
		}
		name := ""
		if subject, found := table.SubjectAt(position); found && subject.Kind == model.CellActive {
			name = subject.Name
		}
		if status == model.StatusMarked {
			data.Marked = append(data.Marked, len(data.Attendances))
		}
		data.Attendances = append(data.Attendances, AttendanceSave{
			Name:     name,
			Position: PositionSave{X: position.X, Y: position.Y},
		})
	}

	return data
}

// Apply replays the snapshot's statuses onto a book. Records that no longer
// resolve to an active seat are skipped; everything else in the book stays
// unchecked.
func (d SaveData) Apply(table *model.Table, book *model.AttendanceBook) {
	marked := make(map[int]bool, len(d.Marked))
	for _, i := range d.Marked {
		marked[i] = true
	}

	for i, a := range d.Attendances {
		status := model.StatusChecked
		if marked[i] {
			status = model.StatusMarked
		}
		book.SetStatus(table, model.Position{X: a.Position.X, Y: a.Position.Y}, status)
	}
}

// SaveSnapshot writes a pretty-printed snapshot of the current statuses.
func SaveSnapshot(path string, table *model.Table, book *model.AttendanceBook) error {
	data, err := json.MarshalIndent(BuildSnapshot(table, book), "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot document.
func LoadSnapshot(path string) (SaveData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SaveData{}, fmt.Errorf("read snapshot: %w", err)
	}
	var data SaveData
	if err := json.Unmarshal(raw, &data); err != nil {
		return SaveData{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return data, nil
}
