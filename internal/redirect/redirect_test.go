package redirect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	allowlist := []string{"/", "/report", "/pricing"}

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"empty target", "", "/"},
		{"root", "/", "/"},
		{"root with query", "/?welcome=1", "/?welcome=1"},
		{"allowed subpath", "/report/42", "/report/42"},
		{"allowed exact", "/report", "/report"},
		{"allowed trailing slash", "/report/", "/report/"},
		{"query preserved", "/pricing?x=1", "/pricing?x=1"},
		{"fragment preserved", "/pricing#plans", "/pricing#plans"},
		{"prefix not on segment boundary", "/reportage", "/"},
		{"unlisted path", "/admin", "/"},
		{"protocol relative", "//evil.com", "/"},
		{"protocol relative with path", "//evil.com/report", "/"},
		{"absolute url", "https://evil.com/x", "/"},
		{"scheme without slashes", "javascript:alert(1)", "/"},
		{"relative path", "report/42", "/"},
		{"backslash host trick", "/\\evil.com", "/"},
		{"crlf injection", "/report\r\nSet-Cookie: x=y", "/"},
		{"newline only", "/report\n", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.target, allowlist, "/"))
		})
	}
}

func TestValidateFallbackIsReturnedVerbatim(t *testing.T) {
	got := Validate("https://evil.com", []string{"/report"}, "/report")
	assert.Equal(t, "/report", got)
}

func TestValidateEmptyAllowlistFailsClosed(t *testing.T) {
	for _, target := range []string{"", "/", "/report", "/report/42", "//evil.com"} {
		assert.Equal(t, "/", Validate(target, nil, "/"), "target %q", target)
	}
}

func TestValidateMalformedAllowlistEntryNeverMatches(t *testing.T) {
	assert.Equal(t, "/", Validate("/report", []string{"report", ""}, "/"))
}

// Legitimate targets pass through unchanged: for every allow-listed
// prefix, the prefix itself and any continuation across a path-segment
// boundary are idempotent.
func TestValidatePassThrough(t *testing.T) {
	allowlist := []string{"/report", "/pricing"}
	suffixes := []string{"", "/", "/42", "?plan=pro", "/42?x=1&y=2", "#section"}

	for _, prefix := range allowlist {
		for _, suffix := range suffixes {
			target := prefix + suffix
			assert.Equal(t, target, Validate(target, allowlist, "/"), "target %q", target)
		}
	}
}
