package types

import "strings"

// DetectType guesses the logical column type from a driver-reported native
// type name, e.g. "BIGINT" -> ColumnTypeInt. Returns false when the name
// gives no usable hint.
func DetectType(native string) (ColumnType, bool) {
	n := strings.ToUpper(native)
	switch {
	case n == "":
		return "", false
	case strings.Contains(n, "BOOL"):
		return ColumnTypeBool, true
	case strings.Contains(n, "INT"):
		return ColumnTypeInt, true
	case strings.Contains(n, "FLOAT"), strings.Contains(n, "REAL"),
		strings.Contains(n, "DOUBLE"), strings.Contains(n, "DEC"),
		strings.Contains(n, "NUM"):
		return ColumnTypeFloat, true
	case strings.Contains(n, "BLOB"), strings.Contains(n, "BIN"):
		return ColumnTypeBinary, true
	case strings.Contains(n, "TIMESTAMP"), strings.Contains(n, "DATETIME"):
		return ColumnTypeDateTime, true
	case strings.Contains(n, "DATE"):
		return ColumnTypeDate, true
	case strings.Contains(n, "TIME"):
		return ColumnTypeDateTime, true
	case strings.Contains(n, "CHAR"), strings.Contains(n, "TEXT"),
		strings.Contains(n, "CLOB"):
		return ColumnTypeText, true
	}
	return "", false
}
