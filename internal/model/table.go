package model

import (
	"iter"
	"math"
	"strings"
)

// CellKind is the derived classification of a table cell.
type CellKind string

const (
	CellActive      CellKind = "active"
	CellBlocked     CellKind = "blocked"
	CellTransparent CellKind = "transparent"
)

// String returns the string representation of the cell kind.
func (k CellKind) String() string {
	return string(k)
}

// IsValid checks whether the cell kind is a known value.
func (k CellKind) IsValid() bool {
	switch k {
	case CellActive, CellBlocked, CellTransparent:
		return true
	}
	return false
}

// Position is a zero-based table coordinate: X is the column, Y is the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Subject is explicit cell content. A transparent subject is a placeholder
// that is not rendered; a blocked subject is an inert labeled cell; an
// active subject is an occupied seat.
type Subject struct {
	Kind CellKind
	Name string
}

// Occupied returns an active subject holding a person's display name.
func Occupied(name string) Subject {
	return Subject{Kind: CellActive, Name: name}
}

// Block returns an inert subject carrying a free-text label.
func Block(label string) Subject {
	return Subject{Kind: CellBlocked, Name: label}
}

// Transparent returns a placeholder subject.
func Transparent() Subject {
	return Subject{Kind: CellTransparent}
}

// IsTransparent reports whether the subject is a placeholder.
func (s Subject) IsTransparent() bool {
	return s.Kind == CellTransparent
}

// IsBlocked reports whether the subject is an inert labeled cell.
func (s Subject) IsBlocked() bool {
	return s.Kind == CellBlocked
}

// IsInert reports whether the subject is excluded from attendance.
func (s Subject) IsInert() bool {
	return s.IsTransparent() || s.IsBlocked()
}

// SubjectEntry pairs a position with explicit content when building tables.
type SubjectEntry struct {
	Position Position
	Subject  Subject
}

// Table is a rectangular seating layout. The subject map only stores
// explicitly assigned positions; any missing in-bounds position is treated
// as an empty active seat.
type Table struct {
	rowCount    int
	columnCount int
	subjects    map[Position]Subject
}

// NewTable creates a table and normalizes entries into a position-indexed map.
// Out-of-bounds entries are discarded and duplicate coordinates keep the last
// value. Negative dimensions are clamped to zero. NewTable never fails.
func NewTable(rowCount, columnCount int, entries []SubjectEntry) *Table {
	rowCount = max(rowCount, 0)
	columnCount = max(columnCount, 0)

	subjects := make(map[Position]Subject, len(entries))
	for _, e := range entries {
		if e.Position.X >= 0 && e.Position.X < columnCount &&
			e.Position.Y >= 0 && e.Position.Y < rowCount {
			subjects[e.Position] = e.Subject
		}
	}

	return &Table{
		rowCount:    rowCount,
		columnCount: columnCount,
		subjects:    subjects,
	}
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return t.rowCount
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return t.columnCount
}

// TotalCells returns rows times columns.
func (t *Table) TotalCells() int {
	return t.rowCount * t.columnCount
}

// Contains reports whether the position is within the current dimensions.
func (t *Table) Contains(position Position) bool {
	return position.X >= 0 && position.X < t.columnCount &&
		position.Y >= 0 && position.Y < t.rowCount
}

// SubjectAt returns the explicit content at a position. The second result is
// false when the position has no explicit entry; such a position is an empty
// active seat if it is in bounds.
func (t *Table) SubjectAt(position Position) (Subject, bool) {
	subject, ok := t.subjects[position]
	return subject, ok
}

// SetSubject assigns explicit content to a position, or clears it when
// subject is nil. It returns true only when a real change happened.
//
// Content is normalized first: names are trimmed, and an active subject with
// a blank name clears the entry, reverting the cell to an implicit empty
// active seat.
func (t *Table) SetSubject(position Position, subject *Subject) bool {
	if !t.Contains(position) {
		return false
	}

	normalized := normalizeSubject(subject)
	current, ok := t.subjects[position]
	if normalized == nil {
		if !ok {
			return false
		}
		delete(t.subjects, position)
		return true
	}
	if ok && current == *normalized {
		return false
	}
	t.subjects[position] = *normalized
	return true
}

// KindAt classifies the cell at a position. The second result is false when
// the position is out of bounds.
func (t *Table) KindAt(position Position) (CellKind, bool) {
	if !t.Contains(position) {
		return "", false
	}
	if subject, ok := t.subjects[position]; ok {
		switch {
		case subject.IsTransparent():
			return CellTransparent, true
		case subject.IsBlocked():
			return CellBlocked, true
		}
	}
	return CellActive, true
}

// IsInert reports whether the position holds a blocked or transparent cell.
// Out-of-bounds positions are not inert; they are simply absent.
func (t *Table) IsInert(position Position) bool {
	kind, ok := t.KindAt(position)
	return ok && kind != CellActive
}

// BlockedCells counts explicitly blocked cells.
func (t *Table) BlockedCells() int {
	n := 0
	for _, subject := range t.subjects {
		if subject.IsBlocked() {
			n++
		}
	}
	return n
}

// TransparentCells counts transparent placeholder cells.
func (t *Table) TransparentCells() int {
	n := 0
	for _, subject := range t.subjects {
		if subject.IsTransparent() {
			n++
		}
	}
	return n
}

// ActiveCells counts attendance-eligible cells, including implicit empty
// seats.
func (t *Table) ActiveCells() int {
	return max(t.TotalCells()-t.BlockedCells()-t.TransparentCells(), 0)
}

// Positions iterates all in-bounds positions in row-major order: y ascending
// outer, x ascending inner. The sequence is restartable. This ordering is
// load-bearing for export text and layout rendering.
func (t *Table) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for y := 0; y < t.rowCount; y++ {
			for x := 0; x < t.columnCount; x++ {
				if !yield(Position{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// AddRow appends one row at the highest index. Existing content is unaffected.
func (t *Table) AddRow() {
	if t.rowCount < math.MaxInt {
		t.rowCount++
	}
}

// AddColumn appends one column at the highest index.
func (t *Table) AddColumn() {
	if t.columnCount < math.MaxInt {
		t.columnCount++
	}
}

// RemoveRow deletes the row at rowIndex, dropping its entries and shifting
// every higher row down by one. It returns false, without mutating, when the
// index is out of range or the table would shrink below one row.
func (t *Table) RemoveRow(rowIndex int) bool {
	if rowIndex < 0 || rowIndex >= t.rowCount || t.rowCount <= 1 {
		return false
	}

	next := make(map[Position]Subject, len(t.subjects))
	for position, subject := range t.subjects {
		if position.Y == rowIndex {
			continue
		}
		if position.Y > rowIndex {
			position.Y--
		}
		next[position] = subject
	}

	t.subjects = next
	t.rowCount--
	return true
}

// RemoveColumn deletes the column at columnIndex, dropping its entries and
// shifting every higher column down by one. It returns false, without
// mutating, when the index is out of range or the table would shrink below
// one column.
func (t *Table) RemoveColumn(columnIndex int) bool {
	if columnIndex < 0 || columnIndex >= t.columnCount || t.columnCount <= 1 {
		return false
	}

	next := make(map[Position]Subject, len(t.subjects))
	for position, subject := range t.subjects {
		if position.X == columnIndex {
			continue
		}
		if position.X > columnIndex {
			position.X--
		}
		next[position] = subject
	}

	t.subjects = next
	t.columnCount--
	return true
}

func normalizeSubject(subject *Subject) *Subject {
	if subject == nil {
		return nil
	}
	switch subject.Kind {
	case CellActive:
		name := strings.TrimSpace(subject.Name)
		if name == "" {
			return nil
		}
		return &Subject{Kind: CellActive, Name: name}
	case CellBlocked:
		return &Subject{Kind: CellBlocked, Name: strings.TrimSpace(subject.Name)}
	default:
		return &Subject{Kind: CellTransparent}
	}
}
