// Package i18n renders the default messages for validation error codes.
package i18n

import "strings"

// Translator retrieves messages for error codes. data provides the
// parameters to embed in the message (for example "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in template-based Translator.
type dictTranslator struct{}

var templates = map[string]string{
	"TYPE_ERROR":       "Type error: expected {expected}, got {got}",
	"COERCION_ERROR":   "Coercion error: cannot convert {from} to {to}",
	"PATTERN_ERROR":    "Pattern error: '{got}' does not match pattern '{pattern}'",
	"MIN_LENGTH_ERROR": "Length error: expected at least {min} characters, got {got}",
	"MAX_LENGTH_ERROR": "Length error: expected at most {max} characters, got {got}",
	"LITERAL_ERROR":    "Literal error: expected {expected}, got {got}",
	"MISSING_FIELD":    "Missing required field: '{field}'",
}

func (dictTranslator) Message(code string, data map[string]string) string {
	tpl, ok := templates[code]
	if !ok {
		return code
	}
	out := tpl
	for k, v := range data {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

var currentTranslator Translator = dictTranslator{}

// T renders the message for code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}

// SetTranslator replaces the Translator implementation; passing nil restores
// the built-in catalog.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{}
		return
	}
	currentTranslator = tr
}
