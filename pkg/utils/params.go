package utils

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var ErrNotPositiveInt = errors.New("must be a positive integer")

// PathID reads a positive integer from the named route parameter.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrNotPositiveInt
	}
	return id, nil
}

// PathInt reads an integer from the named route parameter without range checks.
func PathInt(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, errors.New("must be an integer")
	}
	return v, nil
}
