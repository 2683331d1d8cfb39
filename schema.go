package schema

import "context"

// Schema is the capability shared by every validator in this module: check a
// dynamic value and return either the typed output or a *ValidationError
// describing the failure.
//
// Implementations are immutable after construction and stateless across
// invocations, so one schema value may be used concurrently from many
// goroutines. Parse never blocks; the context parameter exists for interface
// uniformity with callers that carry one.
type Schema[T any] interface {
	Parse(ctx context.Context, v any) (T, error)
}

// Optional is the output of an optional wrapper: either Present holding the
// inner value, or absent.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{Value: v, Present: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }
