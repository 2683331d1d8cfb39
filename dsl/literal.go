package dsl

import (
	"context"

	schema "github.com/fullgream/schema-validator"
)

// LiteralSchema accepts exactly one fixed value. Type mismatch and value
// mismatch both report the Literal kind with expected/got rendered via the
// value's display form.
type LiteralSchema[T comparable] struct {
	want T
	cfg  *schema.ErrorConfig
}

// Literal returns a schema fixed to want.
func Literal[T comparable](want T) *LiteralSchema[T] {
	return &LiteralSchema[T]{want: want}
}

// SetMessage attaches a custom (code, message) pair replacing the default
// code and message of every error this schema produces.
func (s *LiteralSchema[T]) SetMessage(code, message string) *LiteralSchema[T] {
	c := *s
	c.cfg = &schema.ErrorConfig{Code: code, Message: message}
	return &c
}

// Parse validates that v is structurally equal to the fixed value.
func (s *LiteralSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	tv, ok := v.(T)
	if !ok || tv != s.want {
		return zero, schema.LiteralError(schema.FormatValue(s.want), schema.FormatValue(v), s.cfg)
	}
	return tv, nil
}
