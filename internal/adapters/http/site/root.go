// Package site handles the landing route of the service.
package site

import (
	"context"
	"net/http"
)

// DocsPath is where the landing route sends visitors.
const DocsPath = "/api-docs"

// Register attaches the root redirect to mux. Only the exact path "/"
// matches; unknown paths still 404.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("GET /{$}", NewRootHandler().HandleRoot)
}

// RootHandler handles root path requests
type RootHandler struct{}

// NewRootHandler creates a new root handler
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot handles GET / requests by redirecting to the API docs.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, DocsPath, http.StatusTemporaryRedirect)
}
