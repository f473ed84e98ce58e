// Package site serves the landing page at the server root.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("site serve failed")
)

// Register attaches the landing page route to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("/", NewRootHandler().HandleRoot)
}

// RootHandler handles root path requests
type RootHandler struct{}

// NewRootHandler creates a new root handler
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot handles GET / requests. The "/" pattern is a catch-all on
// ServeMux, so anything other than the exact root is a 404 here.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(landingHTML))
}

const landingHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>InnerLens</title>
    <style>
      body{font-family:sans-serif;max-width:40rem;margin:4rem auto;padding:0 1rem}
      code{background:#f2f2f2;padding:0.1rem 0.3rem}
    </style>
  </head>
  <body>
    <h1>InnerLens</h1>
    <p>Scenario-based personality assessment service.</p>
    <ul>
      <li><a href="/api-docs">API documentation</a></li>
      <li><a href="/questions">Question catalog</a> (<code>GET /questions</code>)</li>
      <li><a href="/stats">Service statistics</a> (<code>GET /stats</code>)</li>
      <li><a href="/healthz">Health and metrics</a> (<code>GET /healthz</code>)</li>
    </ul>
  </body>
</html>`
