package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentUserMiddleware(t *testing.T) {
	var (
		gotID int64
		gotOK bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	CurrentUserMiddleware(7)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, int64(7), gotID)
}

func TestUserIDFromContext(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := UserIDFromContext(WithUserID(context.Background(), 3))
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)

	_, ok = UserIDFromContext(context.WithValue(context.Background(), UserIDKey, 3))
	assert.False(t, ok, "untyped ints are not accepted")
}
