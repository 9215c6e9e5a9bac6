package types_test

import (
	"testing"

	. "github.com/tobsdb/rowset/internal/types"
	"gotest.tools/assert"
)

func TestDetectType(t *testing.T) {
	cases := map[string]ColumnType{
		"INTEGER":      ColumnTypeInt,
		"bigint":       ColumnTypeInt,
		"VARCHAR(255)": ColumnTypeText,
		"TEXT":         ColumnTypeText,
		"BLOB":         ColumnTypeBinary,
		"VARBINARY":    ColumnTypeBinary,
		"BOOLEAN":      ColumnTypeBool,
		"REAL":         ColumnTypeFloat,
		"DECIMAL(8,2)": ColumnTypeFloat,
		"DATETIME":     ColumnTypeDateTime,
		"TIMESTAMP":    ColumnTypeDateTime,
		"DATE":         ColumnTypeDate,
		"TIME":         ColumnTypeDateTime,
	}

	for native, want := range cases {
		got, ok := DetectType(native)
		assert.Assert(t, ok, native)
		assert.Equal(t, got, want, native)
	}

	t.Run("no hint", func(t *testing.T) {
		_, ok := DetectType("")
		assert.Assert(t, !ok)
		_, ok = DetectType("GEOMETRY")
		assert.Assert(t, !ok)
	})
}
