// Package controller holds the HTTP plumbing wrapped around the polls API
// routes.
//
// Middlewares, outermost first as the server stacks them:
//   - WithLogger tags each request with an X-Request-Id and writes the access log.
//   - WithCORS opens the API to browser clients and answers preflights.
//   - WithMetrics records request durations per matched route pattern.
//
// PprofMux serves runtime profiles under PprofPrefix.
package controller
