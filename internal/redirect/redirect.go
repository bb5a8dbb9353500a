// Package redirect decides where a user may be sent after an
// authentication flow completes. Return targets arrive as a query
// parameter on the callback route and are attacker-influenced, so every
// candidate is checked against a same-origin path allow-list before it
// is used in a Location header. Validation fails closed: anything that
// is not explicitly permitted resolves to the fallback path.
package redirect

import (
	"strings"
)

// Query parameters consumed around the authentication callback route.
const (
	// ReturnToParam carries the candidate return path through the
	// login flow.
	ReturnToParam = "r"

	// AuthFlagParam marks a page load as a post-auth-callback render.
	// Pages use it for one-time side effects, never for routing
	// decisions.
	AuthFlagParam = "auth"

	// AuthFlagValue is the literal value of AuthFlagParam on a
	// post-auth render.
	AuthFlagValue = "1"
)

// DefaultReturnPath is where users land when no valid return target is
// available.
const DefaultReturnPath = "/"

// AllowedReturnPrefixes lists the path prefixes a post-auth redirect may
// target. Every entry starts with "/" - same-origin, path-only, no
// scheme or host.
var AllowedReturnPrefixes = []string{"/", "/report", "/pricing"}

// Validate reports the path to redirect to after authentication.
// rawTarget is the untrusted candidate, allowlist the permitted path
// prefixes and fallback a known-safe path returned whenever validation
// fails. Validate is pure and never returns an error: an unsafe target
// is not an exceptional condition, it simply resolves to fallback.
//
// A candidate is rejected when it is empty, does not start with a
// single "/", starts with "//" (protocol-relative), carries a scheme
// (":" before the first "/"), or contains CR, LF or backslash
// characters. Surviving candidates must then start with an allowlist
// entry on a path-segment boundary: "/report" covers "/report" and
// "/report/42" but not "/reportage". Query strings and fragments are
// part of the candidate and are passed through untouched.
func Validate(rawTarget string, allowlist []string, fallback string) string {
	if rawTarget == "" {
		return fallback
	}
	// CR/LF would split the response header, backslashes are treated
	// as slashes by some user agents.
	if strings.ContainsAny(rawTarget, "\r\n\\") {
		return fallback
	}
	// A ":" before the first "/" means the target carries a scheme
	// (https:, javascript:, data:).
	if i := strings.IndexAny(rawTarget, ":/"); i < 0 || rawTarget[i] == ':' {
		return fallback
	}
	if !strings.HasPrefix(rawTarget, "/") || strings.HasPrefix(rawTarget, "//") {
		return fallback
	}
	for _, prefix := range allowlist {
		if matchesPrefix(rawTarget, prefix) {
			return rawTarget
		}
	}
	return fallback
}

// matchesPrefix reports whether target begins with prefix aligned to a
// path-segment boundary. The root prefix "/" only matches the root
// itself (plus a query or fragment) - it never blankets the whole site.
func matchesPrefix(target, prefix string) bool {
	if !strings.HasPrefix(prefix, "/") {
		// Malformed allowlist entry. Never match rather than guess.
		return false
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return target == "/" || strings.HasPrefix(target, "/?") || strings.HasPrefix(target, "/#")
	}
	if target == prefix {
		return true
	}
	if !strings.HasPrefix(target, prefix) {
		return false
	}
	switch target[len(prefix)] {
	case '/', '?', '#':
		return true
	}
	return false
}
