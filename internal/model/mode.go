package model

// Mode is the high-level interaction mode for the table.
type Mode string

const (
	ModeCheckIn Mode = "check-in"
	ModeEdit    Mode = "edit"
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// IsValid checks whether the mode is a known value.
func (m Mode) IsValid() bool {
	switch m {
	case ModeCheckIn, ModeEdit:
		return true
	}
	return false
}
