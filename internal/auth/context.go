package auth

import (
	"context"

	"github.com/markbates/goth"
)

type contextKey string

const userContextKey contextKey = "user"

// WithUser attaches the signed-in user to the request context.
func WithUser(ctx context.Context, user *goth.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the signed-in user, if any.
func UserFromContext(ctx context.Context) (*goth.User, bool) {
	user, ok := ctx.Value(userContextKey).(*goth.User)
	return user, ok && user != nil
}
