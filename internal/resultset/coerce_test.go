package resultset

import (
	"testing"
	"time"

	"github.com/tobsdb/rowset/internal/types"
	"gotest.tools/assert"
)

func TestCoerceScalar(t *testing.T) {
	cases := []struct {
		name string
		t    types.ColumnType
		in   any
		want any
	}{
		{"text from bytes", types.ColumnTypeText, []byte("abc"), "abc"},
		{"text from int", types.ColumnTypeText, 5, "5"},
		{"binary from bytes", types.ColumnTypeBinary, []byte{0x1}, "\x01"},
		{"int from string", types.ColumnTypeInt, "42", 42},
		{"int from int64", types.ColumnTypeInt, int64(42), 42},
		{"int from float", types.ColumnTypeInt, 42.9, 42},
		{"int from junk stays", types.ColumnTypeInt, "abc", "abc"},
		{"counter from string", types.ColumnTypeCounter, " 7 ", 7},
		{"float from string", types.ColumnTypeFloat, "1.5", 1.5},
		{"float from int", types.ColumnTypeFloat, 2, 2.0},
		{"bool from string", types.ColumnTypeBool, "true", true},
		{"bool from int", types.ColumnTypeBool, 0, false},
		{"bool from junk stays", types.ColumnTypeBool, "yes?", "yes?"},
		{"unregistered type stays", types.ColumnType("Json"), "x", "x"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.DeepEqual(t, coerceScalar(c.in, c.t), c.want)
		})
	}
}

func TestCoerceTime(t *testing.T) {
	t.Run("iso date string", func(t *testing.T) {
		got := coerceScalar("2024-06-01", types.ColumnTypeDate)
		assert.Equal(t, got, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	})

	t.Run("rfc3339 string", func(t *testing.T) {
		got := coerceScalar("2024-06-01T10:30:00Z", types.ColumnTypeDateTime)
		assert.Equal(t, got, time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC))
	})

	t.Run("numeric epoch passes through", func(t *testing.T) {
		assert.Equal(t, coerceScalar(1717236600, types.ColumnTypeDateTime), 1717236600)
	})

	t.Run("unparseable string passes through", func(t *testing.T) {
		assert.Equal(t, coerceScalar("next tuesday", types.ColumnTypeDate), "next tuesday")
	})
}

func TestCoerceIdempotent(t *testing.T) {
	values := map[types.ColumnType]any{
		types.ColumnTypeText:     []byte("abc"),
		types.ColumnTypeBinary:   []byte{0x1, 0x2},
		types.ColumnTypeInt:      "42",
		types.ColumnTypeCounter:  3.0,
		types.ColumnTypeFloat:    "1.5",
		types.ColumnTypeBool:     "1",
		types.ColumnTypeDate:     "2024-06-01",
		types.ColumnTypeDateTime: "2024-06-01T10:30:00Z",
	}

	for col_type, value := range values {
		once := coerceScalar(value, col_type)
		twice := coerceScalar(once, col_type)
		assert.Equal(t, once, twice)
	}
}

func TestCoerceNilPassthrough(t *testing.T) {
	for _, col_type := range types.VALID_COLUMN_TYPES {
		assert.Assert(t, coerceScalar(nil, col_type) == nil, string(col_type))
	}
}
