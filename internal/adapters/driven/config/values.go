// Package config holds the value coercion shared by the config stores.
//
// Stores keep loosely typed values: TOML decodes integers as int64, the
// environment overlay infers types from strings and the CLI sets Go values
// directly. These helpers turn any of them into the type a caller asks for,
// returning the zero value when the stored value has another kind.
package config

// String returns v if it is a string.
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Int returns v as an int. Floats are truncated.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// Float returns v as a float64. Integers are converted.
func Float(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// Bool returns v if it is a bool.
func Bool(v any) bool {
	b, _ := v.(bool)
	return b
}
