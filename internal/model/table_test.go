package model

import "testing"

func pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func entry(x, y int, s Subject) SubjectEntry {
	return SubjectEntry{Position: pos(x, y), Subject: s}
}

func TestNewTable_DropsOutOfBounds(t *testing.T) {
	table := NewTable(2, 2, []SubjectEntry{
		entry(0, 0, Occupied("Amy")),
		entry(2, 0, Occupied("OffRight")),
		entry(0, 2, Occupied("OffBottom")),
		entry(-1, 0, Occupied("Negative")),
	})

	if _, ok := table.SubjectAt(pos(0, 0)); !ok {
		t.Error("in-bounds entry missing")
	}
	for _, p := range []Position{pos(2, 0), pos(0, 2), pos(-1, 0)} {
		if _, ok := table.SubjectAt(p); ok {
			t.Errorf("out-of-bounds entry at %v survived construction", p)
		}
	}
}

func TestNewTable_DuplicateKeepsLast(t *testing.T) {
	table := NewTable(1, 1, []SubjectEntry{
		entry(0, 0, Occupied("First")),
		entry(0, 0, Occupied("Second")),
	})

	got, ok := table.SubjectAt(pos(0, 0))
	if !ok || got.Name != "Second" {
		t.Errorf("SubjectAt(0,0) = %v, %v; want Second", got, ok)
	}
}

func TestNewTable_ClampsNegativeDimensions(t *testing.T) {
	table := NewTable(-3, -1, nil)
	if table.RowCount() != 0 || table.ColumnCount() != 0 {
		t.Errorf("got %dx%d, want 0x0", table.RowCount(), table.ColumnCount())
	}
	if table.TotalCells() != 0 {
		t.Errorf("TotalCells() = %d, want 0", table.TotalCells())
	}
}

func TestTable_SetSubject(t *testing.T) {
	occupied := Occupied("Amy")
	padded := Occupied("  Amy  ")
	blank := Occupied("   ")
	block := Block("B1")
	transparent := Transparent()

	for _, tc := range []struct {
		name        string
		position    Position
		subject     *Subject
		wantChanged bool
		wantStored  *Subject
	}{
		{"OutOfBounds", pos(5, 5), &occupied, false, nil},
		{"StoreOccupied", pos(0, 0), &occupied, true, &occupied},
		{"TrimsName", pos(0, 0), &padded, true, &occupied},
		{"BlankNameClears", pos(0, 0), &blank, false, nil},
		{"StoreBlock", pos(1, 1), &block, true, &block},
		{"StoreTransparent", pos(2, 2), &transparent, true, &transparent},
		{"ClearExplicit", pos(0, 0), nil, false, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			table := NewTable(3, 3, nil)
			if got := table.SetSubject(tc.position, tc.subject); got != tc.wantChanged {
				t.Errorf("SetSubject() = %v, want %v", got, tc.wantChanged)
			}
			got, ok := table.SubjectAt(tc.position)
			if (tc.wantStored != nil) != ok {
				t.Fatalf("stored = %v, want stored %v", ok, tc.wantStored != nil)
			}
			if tc.wantStored != nil && got != *tc.wantStored {
				t.Errorf("stored subject = %v, want %v", got, *tc.wantStored)
			}
		})
	}
}

func TestTable_SetSubject_SameValueIsNoOp(t *testing.T) {
	table := NewTable(2, 2, nil)
	amy := Occupied("Amy")
	if !table.SetSubject(pos(0, 0), &amy) {
		t.Fatal("first SetSubject should report a change")
	}
	if table.SetSubject(pos(0, 0), &amy) {
		t.Error("identical SetSubject should be a no-op")
	}
}

func TestTable_SetSubject_OutOfBoundsLeavesTableUnchanged(t *testing.T) {
	table := NewTable(3, 3, []SubjectEntry{entry(1, 1, Occupied("Amy"))})
	amy := Occupied("Intruder")
	if table.SetSubject(pos(5, 5), &amy) {
		t.Fatal("out-of-bounds SetSubject should be refused")
	}
	if got := table.ActiveCells(); got != 9 {
		t.Errorf("ActiveCells() = %d, want 9", got)
	}
}

func TestTable_KindAt(t *testing.T) {
	table := NewTable(2, 2, []SubjectEntry{
		entry(0, 0, Occupied("Amy")),
		entry(1, 0, Block("B1")),
		entry(0, 1, Transparent()),
	})

	for _, tc := range []struct {
		position Position
		want     CellKind
		wantOK   bool
	}{
		{pos(0, 0), CellActive, true},
		{pos(1, 0), CellBlocked, true},
		{pos(0, 1), CellTransparent, true},
		{pos(1, 1), CellActive, true}, // implicit empty seat
		{pos(2, 0), "", false},
		{pos(-1, 0), "", false},
	} {
		got, ok := table.KindAt(tc.position)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("KindAt(%v) = %q, %v; want %q, %v", tc.position, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestTable_CountsSumToTotal(t *testing.T) {
	table := NewTable(4, 5, []SubjectEntry{
		entry(0, 0, Occupied("Amy")),
		entry(1, 0, Block("B1")),
		entry(2, 0, Block("B2")),
		entry(3, 0, Transparent()),
		entry(0, 1, Transparent()),
	})

	active, blocked, transparent := table.ActiveCells(), table.BlockedCells(), table.TransparentCells()
	if blocked != 2 || transparent != 2 {
		t.Errorf("blocked=%d transparent=%d, want 2 and 2", blocked, transparent)
	}
	if sum := active + blocked + transparent; sum != table.TotalCells() {
		t.Errorf("active+blocked+transparent = %d, want %d", sum, table.TotalCells())
	}
}

func TestTable_Positions_RowMajorAndRestartable(t *testing.T) {
	table := NewTable(2, 3, nil)
	want := []Position{
		pos(0, 0), pos(1, 0), pos(2, 0),
		pos(0, 1), pos(1, 1), pos(2, 1),
	}

	for pass := 0; pass < 2; pass++ {
		var got []Position
		for p := range table.Positions() {
			got = append(got, p)
		}
		if len(got) != len(want) {
			t.Fatalf("pass %d: got %d positions, want %d", pass, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("pass %d: position[%d] = %v, want %v", pass, i, got[i], want[i])
			}
		}
	}
}

func TestTable_AddRowAndColumn(t *testing.T) {
	table := NewTable(2, 2, []SubjectEntry{entry(1, 1, Occupied("Amy"))})
	table.AddRow()
	table.AddColumn()

	if table.RowCount() != 3 || table.ColumnCount() != 3 {
		t.Errorf("got %dx%d, want 3x3", table.RowCount(), table.ColumnCount())
	}
	if got, ok := table.SubjectAt(pos(1, 1)); !ok || got.Name != "Amy" {
		t.Errorf("existing content moved: %v, %v", got, ok)
	}
	if kind, _ := table.KindAt(pos(2, 2)); kind != CellActive {
		t.Errorf("new cell kind = %q, want active", kind)
	}
}

func TestTable_RemoveRow(t *testing.T) {
	table := NewTable(3, 2, []SubjectEntry{
		entry(0, 0, Occupied("Top")),
		entry(0, 1, Occupied("Middle")),
		entry(1, 2, Occupied("Bottom")),
	})

	if !table.RemoveRow(1) {
		t.Fatal("RemoveRow(1) should succeed")
	}
	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}
	if got, ok := table.SubjectAt(pos(0, 0)); !ok || got.Name != "Top" {
		t.Errorf("lower row changed: %v, %v", got, ok)
	}
	if got, ok := table.SubjectAt(pos(1, 1)); !ok || got.Name != "Bottom" {
		t.Errorf("higher row not shifted down: %v, %v", got, ok)
	}
	if got, ok := table.SubjectAt(pos(0, 1)); ok {
		t.Errorf("removed row's entry survived as %v", got)
	}
}

func TestTable_RemoveColumn(t *testing.T) {
	table := NewTable(1, 3, []SubjectEntry{
		entry(0, 0, Occupied("Left")),
		entry(1, 0, Occupied("Gone")),
		entry(2, 0, Occupied("Right")),
	})

	if !table.RemoveColumn(1) {
		t.Fatal("RemoveColumn(1) should succeed")
	}
	if table.ColumnCount() != 2 {
		t.Fatalf("ColumnCount() = %d, want 2", table.ColumnCount())
	}
	if got, _ := table.SubjectAt(pos(0, 0)); got.Name != "Left" {
		t.Errorf("lower column changed: %v", got)
	}
	if got, _ := table.SubjectAt(pos(1, 0)); got.Name != "Right" {
		t.Errorf("higher column not shifted down: %v", got)
	}
}

func TestTable_RemoveRefusals(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows, cols int
		remove     func(*Table) bool
	}{
		{"LastRow", 1, 3, func(tb *Table) bool { return tb.RemoveRow(0) }},
		{"LastColumn", 2, 1, func(tb *Table) bool { return tb.RemoveColumn(0) }},
		{"RowIndexTooHigh", 3, 3, func(tb *Table) bool { return tb.RemoveRow(3) }},
		{"ColumnIndexTooHigh", 3, 3, func(tb *Table) bool { return tb.RemoveColumn(7) }},
		{"NegativeRowIndex", 3, 3, func(tb *Table) bool { return tb.RemoveRow(-1) }},
		{"SingleColumnPair", 1, 2, func(tb *Table) bool { return tb.RemoveRow(0) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			table := NewTable(tc.rows, tc.cols, []SubjectEntry{entry(0, 0, Occupied("Amy"))})
			if tc.remove(table) {
				t.Fatal("removal should be refused")
			}
			if table.RowCount() != tc.rows || table.ColumnCount() != tc.cols {
				t.Errorf("dimensions changed to %dx%d", table.RowCount(), table.ColumnCount())
			}
			if got, ok := table.SubjectAt(pos(0, 0)); !ok || got.Name != "Amy" {
				t.Errorf("content changed: %v, %v", got, ok)
			}
		})
	}
}

func TestCellKind_IsValid(t *testing.T) {
	for _, tc := range []struct {
		kind CellKind
		want bool
	}{
		{CellActive, true},
		{CellBlocked, true},
		{CellTransparent, true},
		{CellKind(""), false},
		{CellKind("solid"), false},
	} {
		if got := tc.kind.IsValid(); got != tc.want {
			t.Errorf("CellKind(%q).IsValid() = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestDefaultTable_StructurallyValid(t *testing.T) {
	table := DefaultTable()

	if table.RowCount() != 5 || table.ColumnCount() != 6 {
		t.Fatalf("got %dx%d, want 5x6", table.RowCount(), table.ColumnCount())
	}
	if sum := table.ActiveCells() + table.BlockedCells() + table.TransparentCells(); sum != 30 {
		t.Errorf("kind counts sum to %d, want 30", sum)
	}
	for p := range table.Positions() {
		subject, ok := table.SubjectAt(p)
		if !ok {
			continue
		}
		if !subject.Kind.IsValid() {
			t.Errorf("invalid kind %q at %v", subject.Kind, p)
		}
		if subject.Kind == CellActive && subject.Name == "" {
			t.Errorf("occupied seat at %v has no name", p)
		}
	}
}
