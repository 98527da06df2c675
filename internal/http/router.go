// Package http assembles the public route table.
package http

import (
	nethttp "net/http"

	"womens-soccer-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/matches/live", handler.LiveMatches)
	mux.HandleFunc("/matches/fixtures", handler.Fixtures)
	mux.HandleFunc("/standings/", handler.Standings)
	return mux
}
