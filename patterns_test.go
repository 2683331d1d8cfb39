package schema_test

import (
	"testing"

	schema "github.com/fullgream/schema-validator"
)

func TestFormats_AcceptAndReject(t *testing.T) {
	cases := []struct {
		format schema.Format
		good   string
		bad    string
	}{
		{schema.FormatEmail, "user@example.com", "not-an-email"},
		{schema.FormatURL, "https://example.com/path", "ftp://example.com"},
		{schema.FormatDate, "2024-02-29", "2024-13-01"},
		{schema.FormatTime, "23:59:59", "24:00:00"},
		{schema.FormatUUID, "550e8400-e29b-41d4-a716-446655440000", "550e8400-e29b-11d4-a716-446655440000"},
		{schema.FormatIPv4, "192.168.0.1", "256.1.1.1"},
		{schema.FormatPhone, "+14155552671", "0123"},
		{schema.FormatUsername, "user_name-1", "ab"},
		{schema.FormatPassword, "Password1", "weak"},
	}
	for _, c := range cases {
		re := c.format.Regexp()
		if !re.MatchString(c.good) {
			t.Fatalf("%v must accept %q", c.format.DefaultConfig().Code, c.good)
		}
		if re.MatchString(c.bad) {
			t.Fatalf("%v must reject %q", c.format.DefaultConfig().Code, c.bad)
		}
	}
}

func TestFormats_DefaultConfig(t *testing.T) {
	cfg := schema.FormatEmail.DefaultConfig()
	if cfg.Code != "INVALID_EMAIL" {
		t.Fatalf("unexpected code: %q", cfg.Code)
	}
	if cfg.Message == "" {
		t.Fatalf("default message must not be empty")
	}
}
