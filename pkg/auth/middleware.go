package auth

import (
	"context"
	"net/http"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// WithUserID returns a copy of ctx acting as the given user.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// UserIDFromContext returns the user the request acts as, if any.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// CurrentUserMiddleware binds every request to a fixed user. It stands in for a real
// identity provider; no credentials are checked.
func CurrentUserMiddleware(userID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
