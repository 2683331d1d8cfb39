package dsl

import (
	"context"
	"fmt"
	"strconv"

	schema "github.com/fullgream/schema-validator"
)

// patternChecker re-validates a pattern constraint against a transformed
// string. Implemented by the string schema.
type patternChecker interface {
	recheckPattern(s string) error
}

// deferredParser runs every base check except the pattern, leaving the
// pattern to be checked once against the end of the transform chain.
type deferredParser interface {
	parseDeferred(ctx context.Context, v any) (string, error)
}

// chainLink is the internal walk over nested transforms. It yields the
// chain's output so far together with the last string-representable value
// seen and the pattern checker of the base schema, if any.
type chainLink[T any] interface {
	runChain(ctx context.Context, v any) (out T, lastStr string, hasStr bool, pc patternChecker, err error)
}

// Transform wraps a schema with a type-changing transform applied after
// successful validation. Chains extend left-to-right by nesting:
// Transform(Transform(s, f), g) applies g(f(x)). When the base schema
// carries a pattern constraint, the pattern is checked once, against the
// last string-representable value the chain produces (the base output when
// no later step is string-representable).
func Transform[A, B any](s schema.Schema[A], f func(A) B) schema.Schema[B] {
	return &transformSchema[A, B]{base: s, fn: f}
}

type transformSchema[A, B any] struct {
	base schema.Schema[A]
	fn   func(A) B
}

func (t *transformSchema[A, B]) canBeAbsent() bool {
	if aa, ok := any(t.base).(absentAccepting); ok {
		return aa.canBeAbsent()
	}
	return false
}

func (t *transformSchema[A, B]) expectedPrimitive() schema.Primitive {
	if h, ok := any(t.base).(primitiveHinted); ok {
		return h.expectedPrimitive()
	}
	return schema.PrimitiveUnknown
}

func (t *transformSchema[A, B]) runChain(ctx context.Context, v any) (B, string, bool, patternChecker, error) {
	var zero B
	var a A
	var lastStr string
	var hasStr bool
	var pc patternChecker

	switch base := any(t.base).(type) {
	case chainLink[A]:
		av, l, h, c, err := base.runChain(ctx, v)
		if err != nil {
			return zero, "", false, nil, err
		}
		a, lastStr, hasStr, pc = av, l, h, c
	case deferredParser:
		sv, err := base.parseDeferred(ctx, v)
		if err != nil {
			return zero, "", false, nil, err
		}
		av, ok := any(sv).(A)
		if !ok {
			av, err = t.base.Parse(ctx, v)
			if err != nil {
				return zero, "", false, nil, err
			}
		} else {
			lastStr, hasStr = sv, true
			pc, _ = any(t.base).(patternChecker)
		}
		a = av
	default:
		av, err := t.base.Parse(ctx, v)
		if err != nil {
			return zero, "", false, nil, err
		}
		a = av
	}

	b := t.fn(a)
	if s, ok := stringRepresentation(b); ok {
		lastStr, hasStr = s, true
	}
	return b, lastStr, hasStr, pc, nil
}

// Parse runs the base checks, applies the chain in declared order and
// re-checks the base pattern against the transformed value.
func (t *transformSchema[A, B]) Parse(ctx context.Context, v any) (B, error) {
	var zero B
	out, lastStr, hasStr, pc, err := t.runChain(ctx, v)
	if err != nil {
		return zero, err
	}
	if pc != nil && hasStr {
		if err := pc.recheckPattern(lastStr); err != nil {
			return zero, err
		}
	}
	return out, nil
}

// stringRepresentation projects scalar outputs to text for the deferred
// pattern check. Strings pass through; well-known scalars use their
// canonical text form; everything else is not representable.
func stringRepresentation(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	default:
		return "", false
	}
}
