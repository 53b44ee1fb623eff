// Package tablefile reads and writes the on-disk layout and snapshot
// formats. It never substitutes defaults on failure; that policy belongs to
// callers.
package tablefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/andeibuite/checkin/internal/model"
)

// ErrNotRecognized reports that a layout file is valid JSON for neither the
// wrapped nor the legacy bare schema.
var ErrNotRecognized = errors.New("layout matches no known schema")

// wrappedFile is the current on-disk schema: the table sits under a
// "default_table" key so sibling settings can be added later.
type wrappedFile struct {
	DefaultTable *tableFile `json:"default_table"`
}

// tableFile is the serialized table. Dimension fields are pointers so a
// document missing them is rejected instead of decoding as an empty table.
type tableFile struct {
	RowCount    *int           `json:"row_count"`
	ColumnCount *int           `json:"column_count"`
	Subjects    []subjectEntry `json:"subjects"`
}

type subjectEntry struct {
	X    int            `json:"x"`
	Y    int            `json:"y"`
	Kind model.CellKind `json:"kind"`
	Name *string        `json:"name"`
}

// decoders lists candidate schemas in priority order. Load tries each in
// turn and the first success wins; appending here is how a future schema
// revision gets adopted.
var decoders = []func(data []byte) (*model.Table, error){
	decodeWrapped,
	decodeBare,
}

// Load reads a table layout, accepting the current wrapped schema first and
// falling back to the legacy bare schema. Entries outside the declared
// dimensions are dropped and duplicate coordinates keep the last occurrence
// in file order.
func Load(path string) (*model.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	for _, decode := range decoders {
		if table, err := decode(data); err == nil {
			return table, nil
		}
	}
	return nil, fmt.Errorf("decode layout %s: %w", path, ErrNotRecognized)
}

// Save writes the table in the current wrapped schema, pretty-printed, with
// subjects emitted in row-major order.
func Save(path string, table *model.Table) error {
	payload := wrappedFile{DefaultTable: fromTable(table)}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

func decodeWrapped(data []byte) (*model.Table, error) {
	var payload wrappedFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	if payload.DefaultTable == nil {
		return nil, errors.New("missing default_table")
	}
	return payload.DefaultTable.toTable()
}

func decodeBare(data []byte) (*model.Table, error) {
	var payload tableFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload.toTable()
}

func (f *tableFile) toTable() (*model.Table, error) {
	if f.RowCount == nil || f.ColumnCount == nil {
		return nil, errors.New("missing table dimensions")
	}

	entries := make([]model.SubjectEntry, 0, len(f.Subjects))
	for _, s := range f.Subjects {
		if !s.Kind.IsValid() {
			return nil, fmt.Errorf("unknown cell kind %q", s.Kind)
		}
		name := ""
		if s.Name != nil {
			name = *s.Name
		}
		var subject model.Subject
		switch s.Kind {
		case model.CellTransparent:
			subject = model.Transparent()
		case model.CellBlocked:
			subject = model.Block(name)
		default:
			subject = model.Occupied(name)
		}
		entries = append(entries, model.SubjectEntry{
			Position: model.Position{X: s.X, Y: s.Y},
			Subject:  subject,
		})
	}

	return model.NewTable(*f.RowCount, *f.ColumnCount, entries), nil
}

func fromTable(table *model.Table) *tableFile {
	rows, columns := table.RowCount(), table.ColumnCount()
	f := &tableFile{
		RowCount:    &rows,
		ColumnCount: &columns,
		Subjects:    []subjectEntry{},
	}

	for position := range table.Positions() {
		subject, ok := table.SubjectAt(position)
		if !ok {
			continue
		}
		entry := subjectEntry{X: position.X, Y: position.Y, Kind: subject.Kind}
		if !subject.IsTransparent() {
			name := subject.Name
			entry.Name = &name
		}
		f.Subjects = append(f.Subjects, entry)
	}

	return f
}
