// Package auth wraps goth's Google provider and a cookie session store
// behind the small surface the handlers need.
package auth

import (
	"encoding/gob"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"

	"Reportly/internal/redirect"
)

// SessionName is the cookie holding the signed-in user.
const SessionName = "reportly_session"

const userSessionKey = "user"

// ErrNoSession is returned when the request carries no valid session.
var ErrNoSession = errors.New("no authenticated session")

type Config struct {
	GoogleKey       string
	GoogleSecret    string
	CallbackURL     string
	SecretKey       []byte
	SessionDuration time.Duration
}

// Session is the authenticated state attached to a request.
type Session struct {
	User goth.User
}

type GoogleAuth struct {
	store *sessions.CookieStore
}

func init() {
	gob.Register(goth.User{})
	// goth.User.RawData holds decoded provider JSON.
	gob.Register(map[string]interface{}{})
	gob.Register([]interface{}{})
}

func NewGoogleAuth(cfg *Config) *GoogleAuth {
	store := sessions.NewCookieStore(cfg.SecretKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store
	goth.UseProviders(
		google.New(cfg.GoogleKey, cfg.GoogleSecret, cfg.CallbackURL, "email", "profile"),
	)

	return &GoogleAuth{store: store}
}

// BeginAuthHandler starts the OAuth round trip with Google.
func (g *GoogleAuth) BeginAuthHandler(w http.ResponseWriter, r *http.Request) {
	gothic.BeginAuthHandler(w, withProvider(r))
}

// CompleteUserAuth finishes the OAuth round trip at the callback route.
func (g *GoogleAuth) CompleteUserAuth(w http.ResponseWriter, r *http.Request) (goth.User, error) {
	return gothic.CompleteUserAuth(w, withProvider(r))
}

// StoreSession persists the authenticated user in the session cookie.
func (g *GoogleAuth) StoreSession(w http.ResponseWriter, r *http.Request, user goth.User) error {
	session, err := g.store.Get(r, SessionName)
	if err != nil {
		// A stale or tampered cookie decodes to an error together with
		// a fresh session. Overwrite it.
		session, _ = g.store.New(r, SessionName)
	}
	session.Values[userSessionKey] = user
	return session.Save(r, w)
}

// GetSession returns the authenticated session, or ErrNoSession.
func (g *GoogleAuth) GetSession(r *http.Request) (*Session, error) {
	session, err := g.store.Get(r, SessionName)
	if err != nil {
		return nil, err
	}
	user, ok := session.Values[userSessionKey].(goth.User)
	if !ok {
		return nil, ErrNoSession
	}
	if !user.ExpiresAt.IsZero() && time.Now().After(user.ExpiresAt) {
		return nil, ErrNoSession
	}
	return &Session{User: user}, nil
}

// ClearSession expires the session cookie.
func (g *GoogleAuth) ClearSession(w http.ResponseWriter, r *http.Request) {
	session, _ := g.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	_ = session.Save(r, w)
}

// LogoutHandler tears down goth's own provider session.
func (g *GoogleAuth) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	_ = gothic.Logout(w, withProvider(r))
}

// WithGoogleAuth requires a session; anonymous requests are sent to the
// login route with the current path as return target.
func (g *GoogleAuth) WithGoogleAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := g.GetSession(r); err != nil {
			target := url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, "/auth/google?"+redirect.ReturnToParam+"="+target, http.StatusTemporaryRedirect)
			return
		}
		next(w, r)
	}
}

// WithOutGoogleAuth serves next only to anonymous visitors; signed-in
// users are redirected to redirectTo.
func (g *GoogleAuth) WithOutGoogleAuth(redirectTo string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := g.GetSession(r); err == nil {
			http.Redirect(w, r, redirectTo, http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// withProvider pins gothic's provider lookup to google; routes are
// registered per provider rather than with a path variable.
func withProvider(r *http.Request) *http.Request {
	q := r.URL.Query()
	if q.Get("provider") == "" {
		q.Set("provider", "google")
		r = r.Clone(r.Context())
		r.URL.RawQuery = q.Encode()
	}
	return r
}
