package dsl

import (
	"context"

	schema "github.com/fullgream/schema-validator"
)

// OptionalSchema wraps an inner schema and adds "absent" as a valid state.
// An absent input succeeds immediately with None; no inner validation runs
// and no inner constraint ever fires for an absent value.
type OptionalSchema[T any] struct {
	inner schema.Schema[T]
}

// Optional wraps s so that an absent value parses to None.
func Optional[T any](s schema.Schema[T]) *OptionalSchema[T] {
	return &OptionalSchema[T]{inner: s}
}

func (s *OptionalSchema[T]) canBeAbsent() bool { return true }

func (s *OptionalSchema[T]) expectedPrimitive() schema.Primitive {
	if h, ok := any(s.inner).(primitiveHinted); ok {
		return h.expectedPrimitive()
	}
	return schema.PrimitiveUnknown
}

// Parse validates v, unwrapping an already-boxed Optional input. Present
// values delegate to the inner schema; inner failures propagate unchanged.
func (s *OptionalSchema[T]) Parse(ctx context.Context, v any) (schema.Optional[T], error) {
	if v == nil {
		return schema.None[T](), nil
	}
	if ov, ok := v.(schema.Optional[T]); ok {
		if !ov.Present {
			return schema.None[T](), nil
		}
		v = ov.Value
	}
	inner, err := s.inner.Parse(ctx, v)
	if err != nil {
		return schema.None[T](), err
	}
	return schema.Some(inner), nil
}
