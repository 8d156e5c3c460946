package types

import "strconv"

// ToString converts a driver value to its string form.
// The SQLite driver returns strings, []byte, int64, or nil depending on the
// declared column affinity; NULL reads as "".
func ToString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		if s {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// ToInt64 converts a driver value to int64.
// Supports the integer widths and float64 the driver may hand back; nil and
// unknown types read as 0.
func ToInt64(v any) int64 {
	switch i := v.(type) {
	case int64:
		return i
	case int:
		return int64(i)
	case int32:
		return int64(i)
	case uint64:
		return int64(i)
	case float64:
		return int64(i)
	case []byte:
		n, _ := strconv.ParseInt(string(i), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(i, 10, 64)
		return n
	default:
		return 0
	}
}
