package schema

import "strconv"

// Coercion rules: one pure conversion table per target primitive. Each
// function reports the converted value and whether a rule matched; the
// string-to-number rule is the only one that can reject on the value itself
// (a parse failure) rather than on the source type.

// CoerceToString converts integers, floats and booleans to their text form.
// Integers render as decimal text; floats use the canonical shortest form.
func CoerceToString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// CoerceToNumber converts strings (by parsing), integers (by widening) and
// booleans (1/0) to float64.
func CoerceToNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// CoerceToBool applies truthiness: zero numbers, the empty string, absent
// values and empty sequences are false; everything else that matches a rule
// is true. Note this is not a "true"/"false" parse — any non-empty string,
// including the literal "false", coerces to true.
func CoerceToBool(v any) (bool, bool) {
	switch t := v.(type) {
	case nil:
		return false, true
	case bool:
		return t, true
	case int64:
		return t != 0, true
	case float64:
		return t != 0, true
	case string:
		return t != "", true
	case []any:
		return len(t) > 0, true
	default:
		return false, false
	}
}

// CoerceTo coerces v toward the target primitive. It reports false when the
// target is unknown, no rule matches the source type, or a string fails to
// parse as a number.
func CoerceTo(v any, p Primitive) (any, bool) {
	switch p {
	case PrimitiveString:
		return firstAny(CoerceToString(v))
	case PrimitiveNumber:
		return firstAny(CoerceToNumber(v))
	case PrimitiveBool:
		return firstAny(CoerceToBool(v))
	default:
		return nil, false
	}
}

func firstAny[T any](v T, ok bool) (any, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}
