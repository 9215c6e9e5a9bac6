package driver

import (
	"github.com/pkg/errors"
	sorted "github.com/tobshub/go-sortedmap"
)

type memRow struct {
	pos int
	row *Row
}

func memRowsComparisonFunc(a, b memRow) bool {
	return a.pos < b.pos
}

// MemoryResult serves a fixed set of rows held in memory. It supports the
// full Driver contract including Seek, and backs both the tests and the
// sqlite adapter (which buffers its rows on query).
type MemoryResult struct {
	cols  []ColumnMeta
	rows  *sorted.SortedMap[int, memRow]
	count int
	pos   int
	freed bool
}

// NewMemoryResult takes rows keyed by plain (unqualified) column names.
func NewMemoryResult(cols []ColumnMeta, rows []*Row) *MemoryResult {
	m := sorted.New[int, memRow](len(rows), memRowsComparisonFunc)
	for i, row := range rows {
		m.Insert(i, memRow{i, row})
	}
	return &MemoryResult{cols: cols, rows: m, count: len(rows)}
}

func (r *MemoryResult) FetchRow(qualified bool) (*Row, error) {
	if r.freed {
		return nil, ErrReleased
	}
	mr, ok := r.rows.Get(r.pos)
	if !ok {
		return nil, nil
	}
	r.pos++

	// each fetch hands out a fresh copy; the stored rows stay untouched
	row := NewRow()
	for _, col := range r.cols {
		name := col.Name
		if qualified {
			name = col.QualifiedName()
		}
		row.Set(name, mr.row.Get(col.Name))
	}
	return row, nil
}

func (r *MemoryResult) Seek(pos int) error {
	if r.freed {
		return ErrReleased
	}
	if pos < 0 || pos >= r.count {
		return errors.WithMessagef(ErrSeekFailed, "position %d out of range", pos)
	}
	r.pos = pos
	return nil
}

func (r *MemoryResult) RowCount() (int, error) {
	if r.freed {
		return 0, ErrReleased
	}
	return r.count, nil
}

func (r *MemoryResult) Columns() ([]ColumnMeta, error) {
	if r.freed {
		return nil, ErrReleased
	}
	return r.cols, nil
}

func (r *MemoryResult) Free() error {
	r.freed = true
	return nil
}
