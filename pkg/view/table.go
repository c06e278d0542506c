// Package view keeps the displayed projection of the link store: one row per
// link, keyed by the link id, plus the notification stack and loading flag.
//
// Rows are patched in place. Only RenderAll rebuilds the row set, and each
// rebuild bumps Generation so callers can tell a patch from a re-render.
package view

import (
	"fmt"

	"link-admin/pkg/models"
)

// Cell names one addressable sub-element of a row.
type Cell string

const (
	CellName      Cell = "name"
	CellLink      Cell = "link"
	CellEnabled   Cell = "enabled"
	CellTimesUsed Cell = "times_used"
)

// RowKey is the stable display key of a row, derived from the link id.
type RowKey string

// CellKey addresses a single cell of a row.
type CellKey string

// KeyFor derives the row key of a link.
func KeyFor(id models.LinkID) RowKey {
	return RowKey("link_" + id.String())
}

// Cell derives the key of one of the row's cells.
func (k RowKey) Cell(c Cell) CellKey {
	return CellKey(string(k) + "_" + string(c))
}

const (
	indicatorEnabled  = "✓"
	indicatorDisabled = "✗"
)

// EnabledIndicator returns the glyph shown in the enabled cell.
func EnabledIndicator(enabled bool) string {
	if enabled {
		return indicatorEnabled
	}
	return indicatorDisabled
}

// Row is one displayed link. ID is carried structurally; the key is only
// ever derived from it, never parsed back.
type Row struct {
	ID        models.LinkID
	Key       RowKey
	Name      string
	LinkText  string
	Href      string
	Enabled   bool
	TimesUsed int64
}

func newRow(l models.Link) *Row {
	return &Row{
		ID:        l.ID,
		Key:       KeyFor(l.ID),
		Name:      l.Name,
		LinkText:  l.Link,
		Href:      l.Link,
		Enabled:   l.Enabled,
		TimesUsed: l.TimesUsed,
	}
}

type cellRef struct {
	row  RowKey
	cell Cell
}

// Table is the ordered, keyed row set.
type Table struct {
	rows       []*Row
	index      map[RowKey]*Row
	cells      map[CellKey]cellRef
	cursor     int
	generation int

	Loading       bool
	Notifications Notifications
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{
		index: make(map[RowKey]*Row),
		cells: make(map[CellKey]cellRef),
	}
}

// RenderAll clears the table and rebuilds it in the given order. The cursor
// stays on the same link when that link survives the rebuild.
func (t *Table) RenderAll(links []models.Link) {
	var selected RowKey
	if r, ok := t.Selected(); ok {
		selected = r.Key
	}

	t.rows = make([]*Row, 0, len(links))
	t.index = make(map[RowKey]*Row, len(links))
	t.cells = make(map[CellKey]cellRef, len(links)*4)
	t.cursor = 0
	for _, l := range links {
		t.appendRow(newRow(l))
		if selected != "" && t.rows[len(t.rows)-1].Key == selected {
			t.cursor = len(t.rows) - 1
		}
	}
	t.generation++
}

// InsertRow appends a row for a just-created link.
func (t *Table) InsertRow(l models.Link) error {
	key := KeyFor(l.ID)
	if _, ok := t.index[key]; ok {
		return fmt.Errorf("row %s already present", key)
	}
	t.appendRow(newRow(l))
	return nil
}

func (t *Table) appendRow(r *Row) {
	t.rows = append(t.rows, r)
	t.index[r.Key] = r
	for _, c := range []Cell{CellName, CellLink, CellEnabled, CellTimesUsed} {
		t.cells[r.Key.Cell(c)] = cellRef{row: r.Key, cell: c}
	}
}

// PatchRow updates only the cells carried by the patch, plus the enabled
// indicator, and returns the keys of the cells it touched. The row keeps its
// position and the table is not rebuilt.
func (t *Table) PatchRow(id models.LinkID, patch models.LinkPatch) ([]CellKey, error) {
	r, ok := t.index[KeyFor(id)]
	if !ok {
		return nil, fmt.Errorf("row %s not present", KeyFor(id))
	}

	var touched []CellKey
	if patch.Name != nil {
		r.Name = *patch.Name
		touched = append(touched, r.Key.Cell(CellName))
	}
	if patch.Link != nil {
		r.LinkText = *patch.Link
		r.Href = *patch.Link
		touched = append(touched, r.Key.Cell(CellLink))
	}
	r.Enabled = patch.Enabled
	touched = append(touched, r.Key.Cell(CellEnabled))
	return touched, nil
}

// RemoveRow removes exactly the row of the given link.
func (t *Table) RemoveRow(id models.LinkID) error {
	key := KeyFor(id)
	if _, ok := t.index[key]; !ok {
		return fmt.Errorf("row %s not present", key)
	}
	delete(t.index, key)
	for _, c := range []Cell{CellName, CellLink, CellEnabled, CellTimesUsed} {
		delete(t.cells, key.Cell(c))
	}
	for i, r := range t.rows {
		if r.Key == key {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			if t.cursor > i {
				t.cursor--
			}
			break
		}
	}
	t.clampCursor()
	return nil
}

// Row returns the row of the given link
func (t *Table) Row(id models.LinkID) (Row, bool) {
	r, ok := t.index[KeyFor(id)]
	if !ok {
		return Row{}, false
	}
	return *r, true
}

// Rows returns a copy of the rows in display order
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = *r
	}
	return rows
}

// IDs returns the link ids of the rows in display order
func (t *Table) IDs() []models.LinkID {
	ids := make([]models.LinkID, len(t.rows))
	for i, r := range t.rows {
		ids[i] = r.ID
	}
	return ids
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// CellText returns the displayed text of a cell.
func (t *Table) CellText(key CellKey) (string, bool) {
	ref, ok := t.cells[key]
	if !ok {
		return "", false
	}
	r := t.index[ref.row]
	switch ref.cell {
	case CellName:
		return r.Name, true
	case CellLink:
		return r.LinkText, true
	case CellEnabled:
		return EnabledIndicator(r.Enabled), true
	case CellTimesUsed:
		return fmt.Sprintf("%d", r.TimesUsed), true
	}
	return "", false
}

// Generation counts full rebuilds.
func (t *Table) Generation() int {
	return t.generation
}

// Cursor returns the index of the selected row
func (t *Table) Cursor() int {
	return t.cursor
}

// Selected returns the row under the cursor
func (t *Table) Selected() (Row, bool) {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return Row{}, false
	}
	return *t.rows[t.cursor], true
}

// MoveCursor moves the selection by delta rows, clamped to the table.
func (t *Table) MoveCursor(delta int) {
	t.cursor += delta
	t.clampCursor()
}

func (t *Table) clampCursor() {
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}
