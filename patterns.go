package schema

import "regexp"

// Format identifies a built-in named pattern. Selecting a format on a string
// schema installs both its compiled pattern and its default error config.
type Format int

const (
	FormatEmail Format = iota
	FormatURL
	FormatDate
	FormatTime
	FormatUUID
	FormatIPv4
	FormatPhone
	FormatUsername
	FormatPassword
)

// Built-in patterns, compiled once at package init and never mutated.
var (
	patternEmail    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	patternURL      = regexp.MustCompile(`^https?://[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}[a-zA-Z0-9./_?=&-]*$`)
	patternDate     = regexp.MustCompile(`^\d{4}-(?:0[1-9]|1[0-2])-(?:0[1-9]|[12]\d|3[01])$`)
	patternTime     = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)
	patternUUID     = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	patternIPv4     = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)
	patternPhone    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	patternUsername = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,16}$`)
	patternPassword = regexp.MustCompile(`^[A-Z][a-zA-Z0-9\W_]{7,}$`)
)

// Regexp returns the compiled pattern for the format.
func (f Format) Regexp() *regexp.Regexp {
	switch f {
	case FormatEmail:
		return patternEmail
	case FormatURL:
		return patternURL
	case FormatDate:
		return patternDate
	case FormatTime:
		return patternTime
	case FormatUUID:
		return patternUUID
	case FormatIPv4:
		return patternIPv4
	case FormatPhone:
		return patternPhone
	case FormatUsername:
		return patternUsername
	case FormatPassword:
		return patternPassword
	default:
		return patternEmail
	}
}

// Description is the human-readable shape the format accepts.
func (f Format) Description() string {
	switch f {
	case FormatEmail:
		return "valid email address"
	case FormatURL:
		return "valid URL starting with http:// or https://"
	case FormatDate:
		return "date in YYYY-MM-DD format"
	case FormatTime:
		return "time in HH:MM:SS format"
	case FormatUUID:
		return "UUID version 4"
	case FormatIPv4:
		return "IPv4 address"
	case FormatPhone:
		return "phone number in international format"
	case FormatUsername:
		return "username (3-16 characters, alphanumeric with underscore and dash)"
	case FormatPassword:
		return "strong password (min 8 chars, at least one uppercase, one lowercase, one number)"
	default:
		return "valid value"
	}
}

func (f Format) name() string {
	switch f {
	case FormatEmail:
		return "EMAIL"
	case FormatURL:
		return "URL"
	case FormatDate:
		return "DATE"
	case FormatTime:
		return "TIME"
	case FormatUUID:
		return "UUID"
	case FormatIPv4:
		return "IPV4"
	case FormatPhone:
		return "PHONE"
	case FormatUsername:
		return "USERNAME"
	case FormatPassword:
		return "PASSWORD"
	default:
		return "FORMAT"
	}
}

// DefaultConfig is the error override installed when the format is selected
// on a string schema. It replaces any previously attached config.
func (f Format) DefaultConfig() ErrorConfig {
	return ErrorConfig{
		Code:    "INVALID_" + f.name(),
		Message: "Invalid value: expected " + f.Description(),
	}
}
