package model

// AttendanceStatus is the check-in state of an active seat.
type AttendanceStatus string

const (
	StatusChecked   AttendanceStatus = "checked"
	StatusUnchecked AttendanceStatus = "unchecked"
	StatusMarked    AttendanceStatus = "marked"
)

// AllStatuses lists every attendance status in display order.
var AllStatuses = []AttendanceStatus{StatusChecked, StatusUnchecked, StatusMarked}

// String returns the string representation of the status.
func (s AttendanceStatus) String() string {
	return string(s)
}

// IsValid checks whether the status is a known value.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case StatusChecked, StatusUnchecked, StatusMarked:
		return true
	}
	return false
}

// Label returns the presentation label for the status.
func (s AttendanceStatus) Label() string {
	switch s {
	case StatusChecked:
		return "Checked"
	case StatusMarked:
		return "Marked"
	default:
		return "Unchecked"
	}
}

// RGB returns the presentation color for the status. Core logic never reads
// this; it exists for the rendering layer.
func (s AttendanceStatus) RGB() (r, g, b uint8) {
	switch s {
	case StatusChecked:
		return 34, 197, 94
	case StatusMarked:
		return 250, 204, 21
	default:
		return 239, 68, 68
	}
}

// Statistics aggregates attendance metrics for one table snapshot.
type Statistics struct {
	Checked      int `json:"checked"`
	Unchecked    int `json:"unchecked"`
	Marked       int `json:"marked"`
	ActiveTotal  int `json:"active_total"`
	BlockedTotal int `json:"blocked_total"`
}

// CompletedCount is the number of active seats no longer pending.
func (s Statistics) CompletedCount() int {
	return s.Checked + s.Marked
}

// TotalCells counts all visible cells (active + blocked), excluding
// transparent placeholders.
func (s Statistics) TotalCells() int {
	return s.ActiveTotal + s.BlockedTotal
}

// CompletedRatioPercent is the integer percentage of active seats that are
// checked or marked. It is zero when there are no active seats.
func (s Statistics) CompletedRatioPercent() int {
	if s.ActiveTotal == 0 {
		return 0
	}
	return s.CompletedCount() * 100 / s.ActiveTotal
}

// AttendanceBook holds mutable check-in statuses keyed by position. It tracks
// only in-bounds active seats; blocked and transparent cells never have an
// entry, and an absent entry reads as unchecked.
//
// The book does not observe table edits. Callers must Reconcile after every
// structural table change.
type AttendanceBook struct {
	statuses map[Position]AttendanceStatus
}

// NewAttendanceBook creates a book with one unchecked entry per active seat.
func NewAttendanceBook(table *Table) *AttendanceBook {
	book := &AttendanceBook{statuses: make(map[Position]AttendanceStatus)}
	for position := range table.Positions() {
		if !table.IsInert(position) {
			book.statuses[position] = StatusUnchecked
		}
	}
	return book
}

// StatusAt returns the tracked status for a position. The second result is
// false when the position has no entry (out of bounds or inert).
func (b *AttendanceBook) StatusAt(position Position) (AttendanceStatus, bool) {
	status, ok := b.statuses[position]
	return status, ok
}

// Len returns the number of tracked seats.
func (b *AttendanceBook) Len() int {
	return len(b.statuses)
}

// Reconcile resynchronizes entries with the table after edits: entries whose
// position is gone or no longer active are dropped, and every active seat
// without an entry gains an unchecked one. Existing valid entries keep their
// status, and reconciling twice without an intervening table change is a
// no-op.
func (b *AttendanceBook) Reconcile(table *Table) {
	for position := range b.statuses {
		if !table.Contains(position) || table.IsInert(position) {
			delete(b.statuses, position)
		}
	}
	for position := range table.Positions() {
		if table.IsInert(position) {
			continue
		}
		if _, ok := b.statuses[position]; !ok {
			b.statuses[position] = StatusUnchecked
		}
	}
}

// SetStatus updates the status of an active seat. It returns true only when
// a real change happened: out-of-bounds or inert positions are refused, and
// setting the current status again is a no-op.
func (b *AttendanceBook) SetStatus(table *Table, position Position, next AttendanceStatus) bool {
	if !table.Contains(position) || table.IsInert(position) {
		return false
	}

	current, ok := b.statuses[position]
	if !ok {
		current = StatusUnchecked
	}
	if current == next {
		return false
	}
	b.statuses[position] = next
	return true
}

// Statistics tallies every active seat by status, defaulting untracked seats
// to unchecked, and captures the table's active and blocked totals.
func (b *AttendanceBook) Statistics(table *Table) Statistics {
	stats := Statistics{
		ActiveTotal:  table.ActiveCells(),
		BlockedTotal: table.BlockedCells(),
	}

	for position := range table.Positions() {
		if table.IsInert(position) {
			continue
		}
		status, ok := b.statuses[position]
		if !ok {
			status = StatusUnchecked
		}
		switch status {
		case StatusChecked:
			stats.Checked++
		case StatusMarked:
			stats.Marked++
		default:
			stats.Unchecked++
		}
	}

	return stats
}

// namesByStatus collects occupant names with the given status in table order.
// Seats without an explicit name are skipped; they have nothing to list.
func (b *AttendanceBook) namesByStatus(table *Table, status AttendanceStatus) []string {
	var names []string
	for position := range table.Positions() {
		if got, ok := b.statuses[position]; !ok || got != status {
			continue
		}
		if subject, ok := table.SubjectAt(position); ok && subject.Kind == CellActive && subject.Name != "" {
			names = append(names, subject.Name)
		}
	}
	return names
}
