package driver

import "github.com/pkg/errors"

// ColumnMeta describes one column of a result.
type ColumnMeta struct {
	Name string
	// Table the column belongs to. Empty when the driver cannot attribute
	// the column to a table.
	Table string
	// Driver-native type name, e.g. "VARCHAR(255)". Used for logical type
	// detection; may be empty.
	NativeType string
}

// QualifiedName returns "table.column" when the table is known.
func (c ColumnMeta) QualifiedName() string {
	if c.Table == "" {
		return c.Name
	}
	return c.Table + "." + c.Name
}

var (
	ErrReleased   = errors.New("result has been freed")
	ErrSeekFailed = errors.New("seek failed")
)

// Driver is the low-level result contract the result-set layer wraps.
//
// A Driver serves exactly one query result. Rows are handed out in result
// order; every FetchRow call returns a fresh Row owned by the caller.
// After Free every other method fails with ErrReleased.
type Driver interface {
	// FetchRow returns the next row, or (nil, nil) at the end of the
	// result. With qualified true, column names are table-qualified where
	// the driver knows the table.
	FetchRow(qualified bool) (*Row, error)
	// Seek positions the cursor so the next FetchRow returns row pos.
	// Fails with ErrSeekFailed for out-of-range or unsupported positions.
	Seek(pos int) error
	RowCount() (int, error)
	Columns() ([]ColumnMeta, error)
	// Free releases the underlying resource. Idempotent.
	Free() error
}
