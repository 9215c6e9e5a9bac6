package pkg

// Converts a value suspected to be a numeric type to an int.
// Needed all over the place because json decodes numbers as float64
// and sqlite reports integers as int64.
func NumToInt(num any) int {
	switch num := num.(type) {
	case int:
		return num
	case int64:
		return int(num)
	case float64:
		return int(num)
	}
	return 0
}
