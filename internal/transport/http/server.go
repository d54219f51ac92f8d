// Package httptransport builds the HTTP server for the signup service.
package httptransport

import (
	"net/http"

	"example.com/signup/internal/config"
)

// NewServer creates *http.Server wired with the configured address and timeouts.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
