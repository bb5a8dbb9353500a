package auth

import (
	"net/http"
	"net/url"

	"Reportly/internal/redirect"
)

// The validated return target is carried across the OAuth round trip
// in a short-lived cookie: Google only redirects back to the fixed
// callback URL, so the target cannot ride along in the callback query.
const returnToCookieName = "reportly_return_to"

const returnToCookieMaxAge = 300 // seconds; the round trip takes far less

// rememberReturnTo stores the candidate return target for the callback
// to pick up. Targets that fail validation are dropped on the floor -
// the callback then falls back to the default path.
func rememberReturnTo(w http.ResponseWriter, rawTarget string) {
	target := redirect.Validate(rawTarget, redirect.AllowedReturnPrefixes, "")
	if target == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     returnToCookieName,
		Value:    url.QueryEscape(target),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   returnToCookieMaxAge,
	})
}

// popReturnTo consumes the remembered return target. The value is
// re-validated on the way out; a missing or mangled cookie yields the
// default path.
func popReturnTo(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(returnToCookieName)
	if err != nil || cookie.Value == "" {
		return redirect.DefaultReturnPath
	}

	clearReturnTo(w)

	decoded, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return redirect.DefaultReturnPath
	}
	return redirect.Validate(decoded, redirect.AllowedReturnPrefixes, redirect.DefaultReturnPath)
}

func clearReturnTo(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     returnToCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
