package helpers

import (
	"net/http"
	"strconv"
)

// LimitParam reads the limit query parameter and returns it, falling back
// to fallback when the parameter is missing or not a non-negative
// integer. Zero means unbounded, matching the store's limit semantics.
func LimitParam(r *http.Request, fallback int64) int64 {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
