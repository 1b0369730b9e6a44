// Package httpserver builds the HTTP server with sane defaults for this
// project.
package httpserver

import (
	"net/http"
	"time"
)

// New wraps the handler in an http.Server with conservative timeouts.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
