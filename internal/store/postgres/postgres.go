// Package postgres implements the store.Archive interface backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/andeibuite/checkin/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresArchive implements store.Archive backed by a PostgreSQL database.
type PostgresArchive struct {
	db *sql.DB
}

// Compile-time check that PostgresArchive implements store.Archive.
var _ store.Archive = (*PostgresArchive)(nil)

// New opens a connection to the PostgreSQL database at the given URL,
// configures the connection pool, and runs any pending migrations.
func New(databaseURL string) (*PostgresArchive, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &PostgresArchive{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Close closes the underlying database connection.
func (a *PostgresArchive) Close() error {
	return a.db.Close()
}

// RecordSession inserts one archived session.
func (a *PostgresArchive) RecordSession(ctx context.Context, s *store.Session) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO sessions (
			id, taken_at, checked, unchecked, marked,
			active_total, blocked_total, report
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID,
		s.TakenAt,
		s.Checked,
		s.Unchecked,
		s.Marked,
		s.ActiveTotal,
		s.BlockedTotal,
		s.Report,
	)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

const sessionColumns = `id, taken_at, checked, unchecked, marked,
	active_total, blocked_total, report`

// ListSessions returns the most recent sessions, newest first.
func (a *PostgresArchive) ListSessions(ctx context.Context, limit int) ([]*store.Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := a.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions ORDER BY taken_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*store.Session
	for rows.Next() {
		var s store.Session
		if err := rows.Scan(
			&s.ID, &s.TakenAt, &s.Checked, &s.Unchecked, &s.Marked,
			&s.ActiveTotal, &s.BlockedTotal, &s.Report,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}
