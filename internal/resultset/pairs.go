package resultset

import "github.com/pkg/errors"

// FetchPairs builds a key/value collection from the whole result.
//
// With neither column given, the first two columns of the result are used
// as key and value. With only the value column given, the result is a
// plain list of that column across all rows. Giving only the key column
// is an error: either none or both must be specified.
//
// Keys are string-normalized and later rows overwrite earlier ones.
// Fetched values go through column type coercion, same as Fetch.
func (rs *ResultSet) FetchPairs(key_col, value_col string) (any, error) {
	if err := rs.Seek(0); err != nil {
		return nil, err
	}
	row, err := rs.Fetch()
	if err != nil {
		return nil, err
	}
	if row == nil {
		if value_col != "" && key_col == "" {
			return []any{}, nil
		}
		return map[string]any{}, nil
	}

	if value_col == "" {
		if key_col != "" {
			return nil, errors.WithMessage(ErrInvalidArguments,
				"fetchPairs requires either none or both of key and value columns")
		}
		// autodetect: first column is the key, second the value
		cols := row.Columns()
		if len(cols) < 2 {
			return nil, ErrInsufficientColumns
		}
		key_col, value_col = cols[0], cols[1]
	} else {
		if !row.Has(value_col) {
			return nil, unknownColumnError(value_col)
		}
		if key_col == "" {
			data := []any{}
			for row != nil {
				data = append(data, row.Get(value_col))
				if row, err = rs.Fetch(); err != nil {
					return nil, err
				}
			}
			return data, nil
		}
		if !row.Has(key_col) {
			return nil, unknownColumnError(key_col)
		}
	}

	data := map[string]any{}
	for row != nil {
		data[formatKey(row.Get(key_col))] = row.Get(value_col)
		if row, err = rs.Fetch(); err != nil {
			return nil, err
		}
	}
	return data, nil
}
