package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func withParam(name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expected  int64
		expectErr bool
	}{
		{name: "positive", value: "42", expected: 42},
		{name: "zero", value: "0", expectErr: true},
		{name: "negative", value: "-1", expectErr: true},
		{name: "not a number", value: "abc", expectErr: true},
		{name: "empty", value: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := PathID(withParam("id", tt.value), "id")
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrNotPositiveInt)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestPathInt(t *testing.T) {
	v, err := PathInt(withParam("year", "2024"), "year")
	assert.NoError(t, err)
	assert.Equal(t, 2024, v)

	_, err = PathInt(withParam("year", "twenty"), "year")
	assert.Error(t, err)
}
