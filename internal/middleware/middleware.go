package middleware

import (
	"net/http"

	"github.com/jackc/pgx/v5"

	"Reportly/internal/auth"
	"Reportly/internal/db"
)

// WithDBAndAuth wraps a handler with both database and authentication
// middleware.
func WithDBAndAuth(
	dbConnectionDetails db.ConnectionDetails,
	googleAuth *auth.GoogleAuth,
	handler func(http.ResponseWriter, *http.Request, *pgx.Conn),
) http.HandlerFunc {
	// First wrap with DB, then with auth
	dbHandler := db.WithDB(dbConnectionDetails, handler)
	return googleAuth.WithGoogleAuth(func(w http.ResponseWriter, r *http.Request) {
		dbHandler(w, r)
	})
}
