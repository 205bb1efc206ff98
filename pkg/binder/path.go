package binder

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// PathInt extracts a positive integer path parameter from a chi route.
func PathInt(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing %q", ErrFailedToParsePath, name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q must be a positive integer", ErrFailedToParsePath, name)
	}
	return id, nil
}

// PathString extracts a non-empty string path parameter from a chi route.
func PathString(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return "", fmt.Errorf("%w: missing %q", ErrFailedToParsePath, name)
	}
	return raw, nil
}
