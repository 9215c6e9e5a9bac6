package resultset

import (
	"github.com/tobsdb/rowset/internal/driver"
	"github.com/tobsdb/rowset/internal/types"
	"github.com/tobsdb/rowset/pkg"
)

// ResultSet drives a single query result and reshapes its rows.
//
// A ResultSet is not safe for concurrent use; callers needing concurrent
// access must obtain separate results at the driver level.
type ResultSet struct {
	rowCursor
	with_tables bool
	type_map    pkg.Map[string, types.ColumnType]
}

func New(res driver.Driver) *ResultSet {
	rs := &ResultSet{
		rowCursor: rowCursor{res: res},
		type_map:  pkg.Map[string, types.ColumnType]{},
	}
	rs.detectTypes()
	return rs
}

// detectTypes seeds the column type map from driver-reported native types.
// Both plain and table-qualified names are registered so coercion works in
// either naming mode.
func (rs *ResultSet) detectTypes() {
	cols, err := rs.res.Columns()
	if err != nil {
		return
	}
	for _, col := range cols {
		t, ok := types.DetectType(col.NativeType)
		if !ok {
			continue
		}
		rs.type_map.Set(col.Name, t)
		if col.Table != "" {
			rs.type_map.Set(col.QualifiedName(), t)
		}
	}
}

// WithTables switches fetches to table-qualified column names
// ("table.column") where the driver knows the table.
func (rs *ResultSet) WithTables(enabled bool) {
	rs.with_tables = enabled
}

// SetType overrides the logical type of a column. Use the name as fetched,
// i.e. the qualified name when WithTables is on.
func (rs *ResultSet) SetType(col string, t types.ColumnType) {
	rs.type_map.Set(col, t)
}

func (rs *ResultSet) SetTypes(type_map map[string]types.ColumnType) {
	for col, t := range type_map {
		rs.type_map.Set(col, t)
	}
}

// Fetch returns the next row with column types applied, or nil at the end
// of the result.
func (rs *ResultSet) Fetch() (*driver.Row, error) {
	row, err := rs.next(rs.with_tables)
	if err != nil || row == nil {
		return nil, err
	}
	return coerceRow(row, rs.type_map), nil
}

// FetchSingle returns the first column of the next row, or nil at the end
// of the result.
func (rs *ResultSet) FetchSingle() (any, error) {
	row, err := rs.Fetch()
	if err != nil || row == nil || row.Len() == 0 {
		return nil, err
	}
	return row.Get(row.Columns()[0]), nil
}

// FetchAll drains the remaining rows into a list. Single-column results
// collapse to a list of scalars instead of a list of maps.
func (rs *ResultSet) FetchAll() ([]any, error) {
	data := []any{}
	row, err := rs.Fetch()
	if err != nil {
		return nil, err
	}
	if row == nil {
		return data, nil
	}

	single := row.Len() == 1
	for row != nil {
		if single {
			data = append(data, row.Get(row.Columns()[0]))
		} else {
			data = append(data, row.AsMap())
		}
		if row, err = rs.Fetch(); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// Seek positions the cursor so the next Fetch returns row pos. Seeking to
// 0 on a never-fetched result succeeds without touching the driver.
func (rs *ResultSet) Seek(pos int) error {
	return rs.seek(pos)
}

func (rs *ResultSet) RowCount() (int, error) {
	return rs.res.RowCount()
}

func (rs *ResultSet) Columns() ([]driver.ColumnMeta, error) {
	return rs.res.Columns()
}

// Free releases the underlying driver resource. Safe to call more than
// once; afterwards every fetch or seek fails with driver.ErrReleased.
func (rs *ResultSet) Free() error {
	return rs.res.Free()
}
