package codegen

import (
	"strconv"
	"strings"
)

// IntImmediate encodes an integer literal operand, e.g. "#42".
func IntImmediate(v int64) string {
	return "#" + strconv.FormatInt(v, 10)
}

// StringImmediate encodes a string literal operand, e.g. `#"a ="`.
func StringImmediate(s string) string {
	return "#" + strconv.Quote(s)
}

// BoolImmediate encodes a boolean operand, "#True" or "#False".
func BoolImmediate(b bool) string {
	if b {
		return "#True"
	}
	return "#False"
}

// IsImmediate reports whether a string operand is an immediate rather than a variable name.
func IsImmediate(op string) bool {
	return strings.HasPrefix(op, "#")
}
