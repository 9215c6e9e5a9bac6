package driver

import (
	"bytes"
	"encoding/json"

	"github.com/tobsdb/rowset/pkg"
)

// Row is a single fetched row: an insertion-ordered mapping from column
// name to its dynamically-typed value. A nil *Row means "no row".
type Row struct {
	vals *pkg.InsertSortMap[string, any]
}

func NewRow() *Row {
	return &Row{vals: pkg.NewInsertSortMap[string, any]()}
}

func (r *Row) Set(col string, value any) { r.vals.Set(col, value) }

func (r *Row) Get(col string) any { return r.vals.Get(col) }

func (r *Row) Has(col string) bool { return r.vals.Has(col) }

func (r *Row) Len() int { return r.vals.Len() }

// Columns returns the column names in result order.
// The returned slice is shared; callers must not modify it.
func (r *Row) Columns() []string { return r.vals.Order }

// AsMap copies the row into a plain map, dropping column order.
func (r *Row) AsMap() map[string]any {
	m := make(map[string]any, r.vals.Len())
	for _, col := range r.vals.Order {
		m[col] = r.vals.Get(col)
	}
	return m
}

// MarshalJSON writes the row as a JSON object in column order.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.vals.Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.vals.Get(col))
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
