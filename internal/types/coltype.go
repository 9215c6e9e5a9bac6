package types

// ColumnType is the logical type of a result column. It drives value
// coercion and is independent of the driver's native column type.
type ColumnType string

const (
	ColumnTypeText     ColumnType = "Text"
	ColumnTypeBinary   ColumnType = "Binary"
	ColumnTypeBool     ColumnType = "Bool"
	ColumnTypeInt      ColumnType = "Int"
	ColumnTypeFloat    ColumnType = "Float"
	ColumnTypeCounter  ColumnType = "Counter"
	ColumnTypeDate     ColumnType = "Date"
	ColumnTypeDateTime ColumnType = "DateTime"
)

var VALID_COLUMN_TYPES = []ColumnType{
	ColumnTypeText, ColumnTypeBinary, ColumnTypeBool,
	ColumnTypeInt, ColumnTypeFloat, ColumnTypeCounter,
	ColumnTypeDate, ColumnTypeDateTime,
}
