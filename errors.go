package schema

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/fullgream/schema-validator/i18n"
)

// ErrorKind is the closed set of validation failure categories. Every
// failure carries exactly one kind; the kind stays inspectable even when a
// custom ErrorConfig replaces the code and message.
type ErrorKind int

const (
	KindType ErrorKind = iota
	KindCoercion
	KindPattern
	KindMinLength
	KindMaxLength
	KindLiteral
	KindMissingField
	KindObject
)

// Default error codes, one per kind.
const (
	CodeType         = "TYPE_ERROR"
	CodeCoercion     = "COERCION_ERROR"
	CodePattern      = "PATTERN_ERROR"
	CodeMinLength    = "MIN_LENGTH_ERROR"
	CodeMaxLength    = "MAX_LENGTH_ERROR"
	CodeLiteral      = "LITERAL_ERROR"
	CodeMissingField = "MISSING_FIELD"
	CodeObject       = "OBJECT_ERROR"
)

func (k ErrorKind) defaultCode() string {
	switch k {
	case KindType:
		return CodeType
	case KindCoercion:
		return CodeCoercion
	case KindPattern:
		return CodePattern
	case KindMinLength:
		return CodeMinLength
	case KindMaxLength:
		return CodeMaxLength
	case KindLiteral:
		return CodeLiteral
	case KindMissingField:
		return CodeMissingField
	case KindObject:
		return CodeObject
	default:
		return CodeType
	}
}

func (k ErrorKind) String() string { return k.defaultCode() }

// ErrorConfig is a custom (code, message) pair attached to a schema. Once
// attached it replaces the default code and message of every error the
// schema produces; it never changes the recorded kind, and it never reaches
// the child errors inside an Object aggregate.
type ErrorConfig struct {
	Code    string
	Message string
}

// ValidationError is the result of a failed validation. It is immutable
// once constructed.
type ValidationError struct {
	Kind    ErrorKind
	Code    string
	Message string
	// Fields carries the per-field detail of an Object aggregate; nil for
	// every other kind.
	Fields map[string]*ValidationError
}

func (e *ValidationError) Error() string { return e.Message }

// NewError builds a ValidationError for kind. When cfg carries a non-empty
// override its code and message are used verbatim; otherwise the default
// code and the i18n catalog's message template for that code apply.
func NewError(kind ErrorKind, params map[string]string, cfg *ErrorConfig) *ValidationError {
	if cfg != nil && (cfg.Code != "" || cfg.Message != "") {
		return &ValidationError{Kind: kind, Code: cfg.Code, Message: cfg.Message}
	}
	code := kind.defaultCode()
	return &ValidationError{Kind: kind, Code: code, Message: i18n.T(code, params)}
}

// TypeError reports a value of the wrong dynamic type.
func TypeError(expected, got string, cfg *ErrorConfig) *ValidationError {
	return NewError(KindType, map[string]string{"expected": expected, "got": got}, cfg)
}

// CoercionError reports that no coercion rule could convert the value.
func CoercionError(from, to string, cfg *ErrorConfig) *ValidationError {
	return NewError(KindCoercion, map[string]string{"from": from, "to": to}, cfg)
}

// PatternError reports a string that does not match the configured pattern.
func PatternError(pattern, got string, cfg *ErrorConfig) *ValidationError {
	return NewError(KindPattern, map[string]string{"pattern": pattern, "got": got}, cfg)
}

// MinLengthError reports a string shorter than the configured minimum.
func MinLengthError(min, got int, cfg *ErrorConfig) *ValidationError {
	return NewError(KindMinLength, map[string]string{
		"min": strconv.Itoa(min),
		"got": strconv.Itoa(got),
	}, cfg)
}

// MaxLengthError reports a string longer than the configured maximum.
func MaxLengthError(max, got int, cfg *ErrorConfig) *ValidationError {
	return NewError(KindMaxLength, map[string]string{
		"max": strconv.Itoa(max),
		"got": strconv.Itoa(got),
	}, cfg)
}

// LiteralError reports a value that is not the fixed literal.
func LiteralError(expected, got string, cfg *ErrorConfig) *ValidationError {
	return NewError(KindLiteral, map[string]string{"expected": expected, "got": got}, cfg)
}

// MissingFieldError reports a declared field absent from the input mapping.
// It takes no ErrorConfig: object-level overrides apply to the aggregate
// only.
func MissingFieldError(field string) *ValidationError {
	return NewError(KindMissingField, map[string]string{"field": field}, nil)
}

// ObjectError aggregates per-field failures into one error. The default
// message joins "field: message" for every failed field in ascending field
// order; cfg replaces the aggregate's code and message but the structured
// detail in Fields always remains.
func ObjectError(fields map[string]*ValidationError, cfg *ErrorConfig) *ValidationError {
	e := &ValidationError{Kind: KindObject, Fields: fields}
	if cfg != nil && (cfg.Code != "" || cfg.Message != "") {
		e.Code = cfg.Code
		e.Message = cfg.Message
		return e
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+fields[name].Message)
	}
	e.Code = CodeObject
	e.Message = strings.Join(parts, ", ")
	return e
}

// AsValidationError extracts a *ValidationError from err using errors.As.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
