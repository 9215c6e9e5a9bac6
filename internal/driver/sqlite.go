package driver

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// SqliteDB wraps a sqlite database file behind the pure-Go driver.
type SqliteDB struct {
	db *sql.DB
}

func OpenSqlite(path string) (*SqliteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to open sqlite database %s", path)
	}
	return &SqliteDB{db: db}, nil
}

// Query runs the statement and buffers every row into a MemoryResult.
// Buffering keeps the Driver contract simple: database/sql rows are
// forward-only, the buffered result supports Seek and RowCount.
func (s *SqliteDB) Query(query string, args ...any) (*MemoryResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	col_types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	cols := make([]ColumnMeta, len(col_types))
	for i, ct := range col_types {
		cols[i] = ColumnMeta{Name: ct.Name(), NativeType: ct.DatabaseTypeName()}
	}

	buffered := []*Row{}
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := NewRow()
		for i, col := range cols {
			row.Set(col.Name, raw[i])
		}
		buffered = append(buffered, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return NewMemoryResult(cols, buffered), nil
}

func (s *SqliteDB) Close() error { return s.db.Close() }
