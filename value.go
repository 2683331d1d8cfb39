package schema

import (
	"fmt"
	"strconv"
)

// Dynamic values are plain Go values restricted to a closed set: string,
// int64, float64, bool, nil (absent), map[string]any (field mapping), []any
// (sequence), and Optional outputs of nested schemas. Schemas pattern-match
// on this set; they never reflect over arbitrary types.

// TypeName renders the label of a dynamic value's type for error messages.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "None"
	case string:
		return "String"
	case int64:
		return "Integer"
	case float64:
		return "Float"
	case bool:
		return "Boolean"
	case map[string]any:
		return "Object"
	case []any:
		return "Array"
	default:
		return "Unknown"
	}
}

// Primitive identifies a coercion target type.
type Primitive int

const (
	PrimitiveUnknown Primitive = iota
	PrimitiveString
	PrimitiveNumber
	PrimitiveBool
)

func (p Primitive) String() string {
	switch p {
	case PrimitiveString:
		return "String"
	case PrimitiveNumber:
		return "Number"
	case PrimitiveBool:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// FormatValue renders a dynamic value for literal and error messages.
// Strings are quoted; numbers use their canonical text form.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case string:
		return strconv.Quote(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
