package auth

import (
	"net/http"
	"net/url"

	"github.com/jackc/pgx/v5"

	"Reportly/internal/analytics"
	"Reportly/internal/auth"
	"Reportly/internal/db"
	"Reportly/internal/redirect"
)

type AuthHandler struct {
	googleAuth *auth.GoogleAuth
	tracker    *analytics.Tracker
}

func NewAuthHandler(googleAuth *auth.GoogleAuth, tracker *analytics.Tracker) *AuthHandler {
	return &AuthHandler{
		googleAuth: googleAuth,
		tracker:    tracker,
	}
}

// BeginAuthHandler starts the login flow. The candidate return target
// from the "r" parameter is validated and remembered before the OAuth
// round trip; users who already hold a session skip the round trip and
// go straight to their target.
func (h *AuthHandler) BeginAuthHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if _, err := h.googleAuth.GetSession(r); err == nil {
		target := redirect.Validate(query.Get(redirect.ReturnToParam), redirect.AllowedReturnPrefixes, redirect.DefaultReturnPath)
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	rememberReturnTo(w, query.Get(redirect.ReturnToParam))

	if query.Get("signup") == "1" {
		h.tracker.Track(analytics.EventSignupStarted, nil)
	}

	h.googleAuth.BeginAuthHandler(w, r)
}

// AuthCallbackHandlerWithDB finishes the login flow: completes the
// OAuth exchange, upserts the user, stores the session and sends the
// user back to their validated return target with the auth flag set.
func (h *AuthHandler) AuthCallbackHandlerWithDB(w http.ResponseWriter, r *http.Request, conn *pgx.Conn) {
	user, err := h.googleAuth.CompleteUserAuth(w, r)
	if err != nil {
		http.Error(w, "Authentication failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	_, created, err := db.GetOrCreateUser(conn, user)
	if err != nil {
		http.Error(w, "Failed to process user data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.googleAuth.StoreSession(w, r, user); err != nil {
		http.Error(w, "Session creation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	event := analytics.EventLoginSuccess
	if created {
		event = analytics.EventSignupSuccess
	}
	h.tracker.Track(event, map[string]string{"provider": user.Provider})

	http.Redirect(w, r, postAuthLocation(popReturnTo(w, r)), http.StatusSeeOther)
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.googleAuth.LogoutHandler(w, r)
	h.googleAuth.ClearSession(w, r)
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

// postAuthLocation appends the auth flag so the next render knows it
// follows the callback. The target has already been validated.
func postAuthLocation(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		u = &url.URL{Path: redirect.DefaultReturnPath}
	}
	q := u.Query()
	q.Set(redirect.AuthFlagParam, redirect.AuthFlagValue)
	u.RawQuery = q.Encode()
	return u.String()
}
