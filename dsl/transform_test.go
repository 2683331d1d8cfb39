package dsl_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	schema "github.com/fullgream/schema-validator"
	"github.com/fullgream/schema-validator/dsl"
)

func TestTransform_AppliesInDeclaredOrder(t *testing.T) {
	ctx := context.Background()
	f := func(s string) string { return s + "f" }
	g := func(s string) string { return s + "g" }
	chain := dsl.Transform(dsl.Transform[string, string](dsl.String(), f), g)

	v, err := chain.Parse(ctx, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "xfg" {
		t.Fatalf("want g(f(x)), got %q", v)
	}
}

func TestTransform_ChangesOutputType(t *testing.T) {
	ctx := context.Background()
	s := dsl.Transform(dsl.String(), func(v string) int { return len(v) })
	n, err := s.Parse(ctx, "hello")
	if err != nil || n != 5 {
		t.Fatalf("Parse = %v, %v", n, err)
	}
}

func TestTransform_PatternRecheckedAgainstTransformedString(t *testing.T) {
	ctx := context.Background()
	base := dsl.String().Pattern("^[a-z]+$")
	chain := dsl.Transform[string, string](base, strings.ToLower)

	// The raw value violates the pattern but the transformed one satisfies
	// it; the chain checks the pattern after transformation.
	v, err := chain.Parse(ctx, "HELLO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "hello" {
		t.Fatalf("unexpected value: %q", v)
	}

	if _, err := base.Parse(ctx, "HELLO"); kindOf(t, err) != schema.KindPattern {
		t.Fatalf("bare schema must still reject: %v", err)
	}
}

func TestTransform_PatternFailureAfterTransform(t *testing.T) {
	ctx := context.Background()
	chain := dsl.Transform[string, string](dsl.String().Pattern("^[a-z]+$"), strings.ToUpper)
	if _, err := chain.Parse(ctx, "hello"); kindOf(t, err) != schema.KindPattern {
		t.Fatalf("want pattern error against transformed value, got %v", err)
	}
}

func TestTransform_PatternRecheckedAgainstScalarOutput(t *testing.T) {
	ctx := context.Background()
	base := dsl.String().Pattern("^[0-9]+$")
	chain := dsl.Transform(base, func(v string) int64 {
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	})

	// int64 output renders as decimal text, which still matches.
	n, err := chain.Parse(ctx, "42")
	if err != nil || n != 42 {
		t.Fatalf("Parse = %v, %v", n, err)
	}

	negate := dsl.Transform(base, func(v string) int64 {
		n, _ := strconv.ParseInt(v, 10, 64)
		return -n
	})
	// "-42" no longer matches the digits-only pattern.
	if _, err := negate.Parse(ctx, "42"); kindOf(t, err) != schema.KindPattern {
		t.Fatalf("want pattern error on scalar rendering, got %v", err)
	}
}

func TestTransform_NonRepresentableOutputFallsBackToBaseString(t *testing.T) {
	ctx := context.Background()
	base := dsl.String().Pattern("^[a-z]+$")
	chain := dsl.Transform(base, func(v string) []string { return []string{v} })

	if _, err := chain.Parse(ctx, "ABC"); kindOf(t, err) != schema.KindPattern {
		t.Fatalf("base string must be pattern-checked, got %v", err)
	}
	v, err := chain.Parse(ctx, "abc")
	if err != nil || len(v) != 1 || v[0] != "abc" {
		t.Fatalf("Parse = %v, %v", v, err)
	}
}

func TestTransform_BaseConstraintsSeePreTransformValue(t *testing.T) {
	ctx := context.Background()
	chain := dsl.Transform[string, string](dsl.String().Max(5), func(v string) string {
		return v + v
	})
	// The doubled output exceeds the max, but length bounds apply to the
	// base value only.
	v, err := chain.Parse(ctx, "abc")
	if err != nil || v != "abcabc" {
		t.Fatalf("Parse = %q, %v", v, err)
	}
}
