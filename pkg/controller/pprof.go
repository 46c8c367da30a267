package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where the API server mounts PprofMux.
const PprofPrefix = "/debug/pprof/"

// PprofMux serves the runtime profiles of the polls server. Named profiles
// (heap, goroutine, ...) are resolved by the index handler.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	for path, handler := range map[string]http.HandlerFunc{
		"":        pprof.Index,
		"cmdline": pprof.Cmdline,
		"profile": pprof.Profile,
		"symbol":  pprof.Symbol,
		"trace":   pprof.Trace,
	} {
		mux.HandleFunc(PprofPrefix+path, handler)
	}

	return mux
}
