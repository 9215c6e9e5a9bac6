package resultset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tobsdb/rowset/internal/driver"
	"github.com/tobsdb/rowset/internal/types"
	"github.com/tobsdb/rowset/pkg"
)

// coerceRow applies the column type map to a fetched row. Columns absent
// from the map pass through unchanged. The input row is not modified.
func coerceRow(row *driver.Row, type_map pkg.Map[string, types.ColumnType]) *driver.Row {
	if len(type_map) == 0 {
		return row
	}
	out := driver.NewRow()
	for _, col := range row.Columns() {
		value := row.Get(col)
		if type_map.Has(col) {
			value = coerceScalar(value, type_map.Get(col))
		}
		out.Set(col, value)
	}
	return out
}

// coerceScalar casts a value to the primitive shape of the logical type.
// nil always passes through, as does any value that cannot be cast.
// Coercion is idempotent: coercing an already-coerced value is a no-op.
func coerceScalar(value any, t types.ColumnType) any {
	if value == nil {
		return nil
	}

	switch t {
	case types.ColumnTypeText, types.ColumnTypeBinary:
		return coerceString(value)
	case types.ColumnTypeInt, types.ColumnTypeCounter:
		return coerceInt(value)
	case types.ColumnTypeFloat:
		return coerceFloat(value)
	case types.ColumnTypeBool:
		return coerceBool(value)
	case types.ColumnTypeDate, types.ColumnTypeDateTime:
		return coerceTime(value)
	}
	return value
}

func coerceString(value any) any {
	switch value := value.(type) {
	case string:
		return value
	case []byte:
		return string(value)
	}
	return fmt.Sprintf("%v", value)
}

func coerceInt(value any) any {
	switch v := value.(type) {
	case int, int64, float64:
		return pkg.NumToInt(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return value
		}
		return n
	case []byte:
		return coerceInt(string(v))
	}
	return value
}

func coerceFloat(value any) any {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return value
		}
		return f
	case []byte:
		return coerceFloat(string(v))
	}
	return value
}

func coerceBool(value any) any {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
		if err != nil {
			return value
		}
		return b
	}
	return value
}

// Accepted string formats are RFC 3339 and plain dates ("2006-01-02").
// Numeric epoch values pass through unchanged; so do strings in any
// other format. The conversion is best-effort.
func coerceTime(value any) any {
	switch v := value.(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse(time.DateOnly, v); err == nil {
			return t
		}
	}
	return value
}
