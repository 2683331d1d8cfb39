package dsl

import (
	"context"

	schema "github.com/fullgream/schema-validator"
)

// NumberSchema validates numeric values. Numbers are represented as float64
// uniformly; integers widen on the way in.
type NumberSchema struct {
	coerce     bool
	transforms []func(float64) float64
	cfg        *schema.ErrorConfig
}

// Number returns a new number schema.
func Number() *NumberSchema { return &NumberSchema{} }

func (s *NumberSchema) clone() *NumberSchema {
	c := *s
	c.transforms = s.transforms[:len(s.transforms):len(s.transforms)]
	return &c
}

// Coerce enables conversion of strings (by parsing) and booleans (1/0)
// before the type check fails.
func (s *NumberSchema) Coerce() *NumberSchema {
	c := s.clone()
	c.coerce = true
	return c
}

// Transform appends a same-type transform applied after validation.
func (s *NumberSchema) Transform(f func(float64) float64) *NumberSchema {
	c := s.clone()
	c.transforms = append(c.transforms, f)
	return c
}

// SetMessage attaches a custom (code, message) pair replacing the default
// code and message of every error this schema produces.
func (s *NumberSchema) SetMessage(code, message string) *NumberSchema {
	c := s.clone()
	c.cfg = &schema.ErrorConfig{Code: code, Message: message}
	return c
}

// Optional wraps the schema so that an absent value is valid.
func (s *NumberSchema) Optional() *OptionalSchema[float64] { return Optional[float64](s) }

func (s *NumberSchema) expectedPrimitive() schema.Primitive { return schema.PrimitiveNumber }

// Parse validates v and returns the (possibly transformed) float64.
func (s *NumberSchema) Parse(ctx context.Context, v any) (float64, error) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int64:
		f = float64(t)
	default:
		if !s.coerce {
			return 0, schema.TypeError("Number", schema.TypeName(v), s.cfg)
		}
		cv, ok := schema.CoerceToNumber(v)
		if !ok {
			return 0, schema.CoercionError(schema.TypeName(v), "Number", s.cfg)
		}
		f = cv
	}
	for _, fn := range s.transforms {
		f = fn(f)
	}
	return f, nil
}
