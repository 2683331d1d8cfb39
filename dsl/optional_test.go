package dsl_test

import (
	"context"
	"testing"

	schema "github.com/fullgream/schema-validator"
	"github.com/fullgream/schema-validator/dsl"
)

func TestOptional_AbsentIsValidRegardlessOfInnerConstraints(t *testing.T) {
	ctx := context.Background()
	s := dsl.String().Min(10).Optional()
	v, err := s.Parse(ctx, nil)
	if err != nil {
		t.Fatalf("absent must never fail: %v", err)
	}
	if v.Present {
		t.Fatalf("want absent, got %v", v)
	}
}

func TestOptional_PresentDelegatesToInner(t *testing.T) {
	ctx := context.Background()
	s := dsl.Number().Optional()

	v, err := s.Parse(ctx, float64(3))
	if err != nil || !v.Present || v.Value != 3.0 {
		t.Fatalf("Parse(3) = %v, %v", v, err)
	}
	if _, err := s.Parse(ctx, "x"); kindOf(t, err) != schema.KindType {
		t.Fatalf("inner error must propagate unchanged, got %v", err)
	}
}

func TestOptional_UnwrapsBoxedOptional(t *testing.T) {
	ctx := context.Background()
	s := dsl.Number().Optional()

	v, err := s.Parse(ctx, schema.Some(float64(5)))
	if err != nil || !v.Present || v.Value != 5.0 {
		t.Fatalf("boxed present = %v, %v", v, err)
	}
	v, err = s.Parse(ctx, schema.None[float64]())
	if err != nil || v.Present {
		t.Fatalf("boxed absent = %v, %v", v, err)
	}
}

func TestOptional_TransformOverWholeResult(t *testing.T) {
	ctx := context.Background()
	s := dsl.Transform(dsl.Number().Optional(), func(v schema.Optional[float64]) float64 {
		if !v.Present {
			return -1
		}
		return v.Value
	})

	v, err := s.Parse(ctx, nil)
	if err != nil || v != -1 {
		t.Fatalf("absent through transform = %v, %v", v, err)
	}
	v, err = s.Parse(ctx, float64(8))
	if err != nil || v != 8 {
		t.Fatalf("present through transform = %v, %v", v, err)
	}
}
