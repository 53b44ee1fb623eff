package model

import (
	"fmt"
	"math/rand/v2"
)

const (
	defaultRowCount    = 5
	defaultColumnCount = 6
)

// defaultRoster is the fixed name pool used when seeding a fresh table.
var defaultRoster = []string{
	"Alice", "Ben", "Cindy", "Dylan", "Ethan", "Fiona", "Gavin", "Helen",
	"Ivy", "Jason", "Kira", "Leo", "Mila", "Nora", "Owen", "Penny",
	"Quinn", "Ruby", "Sam", "Tina", "Uma", "Vince", "Wendy", "Zack",
}

// DefaultTable produces a randomly seeded 5x6 table as a convenience
// starting layout. Each cell rolls a 10-sided die: 0 becomes transparent,
// 1-2 a numbered block, and 3-9 an occupied seat with a roster name.
// Callers must not rely on specific content, only on a structurally valid
// table.
func DefaultTable() *Table {
	return DefaultTableFromRoster(defaultRoster)
}

// DefaultTableFromRoster is DefaultTable with a caller-provided name pool.
// An empty roster falls back to the built-in one.
func DefaultTableFromRoster(roster []string) *Table {
	if len(roster) == 0 {
		roster = defaultRoster
	}

	var entries []SubjectEntry
	for y := 0; y < defaultRowCount; y++ {
		for x := 0; x < defaultColumnCount; x++ {
			var subject Subject
			switch roll := rand.IntN(10); {
			case roll == 0:
				subject = Transparent()
			case roll <= 2:
				subject = Block(fmt.Sprintf("Block %d", 1+rand.IntN(9)))
			default:
				subject = Occupied(roster[rand.IntN(len(roster))])
			}
			entries = append(entries, SubjectEntry{
				Position: Position{X: x, Y: y},
				Subject:  subject,
			})
		}
	}

	return NewTable(defaultRowCount, defaultColumnCount, entries)
}
