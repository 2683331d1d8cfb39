package dsl

import (
	"context"

	schema "github.com/fullgream/schema-validator"
)

// AnyAdapter adapts Schema[T] to an any-typed wrapper so that an object
// schema can hold a heterogeneous set of named children uniformly. It also
// carries the child's expected primitive, which drives the object-level
// coercion path, and whether the child accepts an absent value.
type AnyAdapter struct {
	parse     func(context.Context, any) (any, error)
	primitive schema.Primitive
	optional  bool
}

// primitiveHinted is implemented by schemas with a known coercion target.
type primitiveHinted interface {
	expectedPrimitive() schema.Primitive
}

// absentAccepting is implemented by schemas for which a missing field is a
// valid state rather than an error.
type absentAccepting interface {
	canBeAbsent() bool
}

// SchemaOf wraps a strongly typed Schema[T] as an AnyAdapter for Field
// builders.
func SchemaOf[T any](s schema.Schema[T]) AnyAdapter {
	ad := AnyAdapter{
		parse:     func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		primitive: schema.PrimitiveUnknown,
	}
	if h, ok := any(s).(primitiveHinted); ok {
		ad.primitive = h.expectedPrimitive()
	}
	if aa, ok := any(s).(absentAccepting); ok {
		ad.optional = aa.canBeAbsent()
	}
	return ad
}
