package dsl

import (
	"context"

	schema "github.com/fullgream/schema-validator"
)

// BoolSchema validates boolean values.
type BoolSchema struct {
	coerce     bool
	transforms []func(bool) bool
	cfg        *schema.ErrorConfig
}

// Bool returns a new boolean schema.
func Bool() *BoolSchema { return &BoolSchema{} }

func (s *BoolSchema) clone() *BoolSchema {
	c := *s
	c.transforms = s.transforms[:len(s.transforms):len(s.transforms)]
	return &c
}

// Coerce enables truthiness conversion: zero numbers, the empty string,
// absent values and empty sequences become false, everything else true.
func (s *BoolSchema) Coerce() *BoolSchema {
	c := s.clone()
	c.coerce = true
	return c
}

// Transform appends a same-type transform applied after validation.
func (s *BoolSchema) Transform(f func(bool) bool) *BoolSchema {
	c := s.clone()
	c.transforms = append(c.transforms, f)
	return c
}

// SetMessage attaches a custom (code, message) pair replacing the default
// code and message of every error this schema produces.
func (s *BoolSchema) SetMessage(code, message string) *BoolSchema {
	c := s.clone()
	c.cfg = &schema.ErrorConfig{Code: code, Message: message}
	return c
}

// Optional wraps the schema so that an absent value is valid.
func (s *BoolSchema) Optional() *OptionalSchema[bool] { return Optional[bool](s) }

func (s *BoolSchema) expectedPrimitive() schema.Primitive { return schema.PrimitiveBool }

// Parse validates v and returns the (possibly transformed) bool.
func (s *BoolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		if !s.coerce {
			return false, schema.TypeError("Boolean", schema.TypeName(v), s.cfg)
		}
		cv, cok := schema.CoerceToBool(v)
		if !cok {
			return false, schema.CoercionError(schema.TypeName(v), "Boolean", s.cfg)
		}
		b = cv
	}
	for _, fn := range s.transforms {
		b = fn(b)
	}
	return b, nil
}
