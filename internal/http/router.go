package http

import (
	nethttp "net/http"

	"draft-board-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/board", handler.Board)
	mux.HandleFunc("/players", handler.Board)
	mux.HandleFunc("/players/", handler.ServeHTTP)
	return mux
}
