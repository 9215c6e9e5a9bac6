package resultset

import "github.com/tobsdb/rowset/internal/driver"

// rowCursor tracks whether the underlying driver cursor has ever been
// advanced. A fresh result is implicitly at position 0, so the first
// rewind is free and never touches the driver.
type rowCursor struct {
	res     driver.Driver
	fetched bool
}

func (c *rowCursor) seek(pos int) error {
	if pos == 0 && !c.fetched {
		return nil
	}
	return c.res.Seek(pos)
}

// next returns the following row, or nil at the end of the result.
func (c *rowCursor) next(qualified bool) (*driver.Row, error) {
	row, err := c.res.FetchRow(qualified)
	if err != nil || row == nil {
		return nil, err
	}
	c.fetched = true
	return row, nil
}
