package dsl

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	schema "github.com/fullgream/schema-validator"
)

// StringSchema validates string values. Check order: type/coerce, minimum
// length, maximum length, same-type transforms, pattern. Length bounds count
// runes and see the pre-transform value; the pattern sees the post-transform
// value, which is what makes trim-then-match work.
type StringSchema struct {
	coerce     bool
	min, max   *int
	pattern    *regexp.Regexp
	patternSrc string
	transforms []func(string) string
	cfg        *schema.ErrorConfig
}

// String returns a new string schema.
func String() *StringSchema { return &StringSchema{} }

func (s *StringSchema) clone() *StringSchema {
	c := *s
	c.transforms = s.transforms[:len(s.transforms):len(s.transforms)]
	return &c
}

// Coerce enables conversion of integers, floats and booleans to their text
// form before the type check fails.
func (s *StringSchema) Coerce() *StringSchema {
	c := s.clone()
	c.coerce = true
	return c
}

// Min sets the minimum length in runes.
func (s *StringSchema) Min(n int) *StringSchema {
	c := s.clone()
	c.min = &n
	return c
}

// Max sets the maximum length in runes.
func (s *StringSchema) Max(n int) *StringSchema {
	c := s.clone()
	c.max = &n
	return c
}

// Pattern sets a regular expression the value must match. It panics when the
// expression does not compile; an invalid pattern is a programmer error
// caught at construction, never during validation.
func (s *StringSchema) Pattern(expr string) *StringSchema {
	c := s.clone()
	c.pattern = regexp.MustCompile(expr)
	c.patternSrc = expr
	return c
}

// Format installs a built-in named pattern together with its default error
// config, overwriting any previously set pattern and config.
func (s *StringSchema) Format(f schema.Format) *StringSchema {
	c := s.clone()
	re := f.Regexp()
	c.pattern = re
	c.patternSrc = re.String()
	cfg := f.DefaultConfig()
	c.cfg = &cfg
	return c
}

func (s *StringSchema) Email() *StringSchema    { return s.Format(schema.FormatEmail) }
func (s *StringSchema) URL() *StringSchema      { return s.Format(schema.FormatURL) }
func (s *StringSchema) Date() *StringSchema     { return s.Format(schema.FormatDate) }
func (s *StringSchema) Time() *StringSchema     { return s.Format(schema.FormatTime) }
func (s *StringSchema) UUID() *StringSchema     { return s.Format(schema.FormatUUID) }
func (s *StringSchema) IPv4() *StringSchema     { return s.Format(schema.FormatIPv4) }
func (s *StringSchema) Phone() *StringSchema    { return s.Format(schema.FormatPhone) }
func (s *StringSchema) Username() *StringSchema { return s.Format(schema.FormatUsername) }
func (s *StringSchema) Password() *StringSchema { return s.Format(schema.FormatPassword) }

// Transform appends a same-type transform, applied after the length checks
// and before the pattern check. Type-changing transforms are expressed with
// the package-level Transform function.
func (s *StringSchema) Transform(f func(string) string) *StringSchema {
	c := s.clone()
	c.transforms = append(c.transforms, f)
	return c
}

// Trim appends a whitespace-trimming transform.
func (s *StringSchema) Trim() *StringSchema { return s.Transform(strings.TrimSpace) }

// Lower appends a lowercasing transform.
func (s *StringSchema) Lower() *StringSchema { return s.Transform(strings.ToLower) }

// Upper appends an uppercasing transform.
func (s *StringSchema) Upper() *StringSchema { return s.Transform(strings.ToUpper) }

// SetMessage attaches a custom (code, message) pair replacing the default
// code and message of every error this schema produces.
func (s *StringSchema) SetMessage(code, message string) *StringSchema {
	c := s.clone()
	c.cfg = &schema.ErrorConfig{Code: code, Message: message}
	return c
}

// Optional wraps the schema so that an absent value is valid.
func (s *StringSchema) Optional() *OptionalSchema[string] { return Optional[string](s) }

func (s *StringSchema) expectedPrimitive() schema.Primitive { return schema.PrimitiveString }

// parseDeferred runs every check except the pattern. Transform chains call
// it directly so the pattern can be re-checked against the transformed value.
func (s *StringSchema) parseDeferred(ctx context.Context, v any) (string, error) {
	sv, ok := v.(string)
	if !ok {
		if !s.coerce {
			return "", schema.TypeError("String", schema.TypeName(v), s.cfg)
		}
		cv, ok := schema.CoerceToString(v)
		if !ok {
			return "", schema.CoercionError(schema.TypeName(v), "String", s.cfg)
		}
		sv = cv
	}
	n := utf8.RuneCountInString(sv)
	if s.min != nil && n < *s.min {
		return "", schema.MinLengthError(*s.min, n, s.cfg)
	}
	if s.max != nil && n > *s.max {
		return "", schema.MaxLengthError(*s.max, n, s.cfg)
	}
	for _, f := range s.transforms {
		sv = f(sv)
	}
	return sv, nil
}

func (s *StringSchema) recheckPattern(sv string) error {
	if s.pattern != nil && !s.pattern.MatchString(sv) {
		return schema.PatternError(s.patternSrc, sv, s.cfg)
	}
	return nil
}

// Parse validates v and returns the (possibly transformed) string.
func (s *StringSchema) Parse(ctx context.Context, v any) (string, error) {
	sv, err := s.parseDeferred(ctx, v)
	if err != nil {
		return "", err
	}
	if err := s.recheckPattern(sv); err != nil {
		return "", err
	}
	return sv, nil
}
