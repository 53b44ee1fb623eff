// Package store defines the optional session archive: a history of exported
// check-in sessions. The core data layer never depends on it.
package store

import (
	"context"
	"time"
)

// Session is one archived check-in export.
type Session struct {
	ID           string    `json:"id"`
	TakenAt      time.Time `json:"taken_at"`
	Checked      int       `json:"checked"`
	Unchecked    int       `json:"unchecked"`
	Marked       int       `json:"marked"`
	ActiveTotal  int       `json:"active_total"`
	BlockedTotal int       `json:"blocked_total"`
	Report       string    `json:"report"`
}

// Archive persists exported sessions.
type Archive interface {
	RecordSession(ctx context.Context, session *Session) error
	ListSessions(ctx context.Context, limit int) ([]*Session, error)
	Close() error
}
