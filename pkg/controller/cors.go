package controller

import (
	"net/http"
	"strconv"
	"strings"
)

// corsMaxAge lets browsers reuse a preflight answer for ten minutes.
const corsMaxAge = 10 * 60

var (
	corsMethods = strings.Join([]string{ //nolint: gochecknoglobals
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}, ", ")
	corsHeaders = strings.Join([]string{ //nolint: gochecknoglobals
		"Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Origin", "Cache-Control", RequestIDHeader,
	}, ", ")
)

// WithCORS opens the polls API to browser clients on any origin. Preflight
// requests are answered with 204 and never reach next.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Methods", corsMethods)
		h.Set("Access-Control-Allow-Headers", corsHeaders)
		h.Set("Access-Control-Expose-Headers", RequestIDHeader)

		if r.Method != http.MethodOptions {
			next.ServeHTTP(w, r)

			return
		}

		h.Set("Access-Control-Max-Age", strconv.Itoa(corsMaxAge))
		w.WriteHeader(http.StatusNoContent)
	})
}
