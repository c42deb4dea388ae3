package main

import (
	"context"
	"net"
	"net/http"

	"campusHub/internal/config"
)

// newServer builds the HTTP server. Shutdown cancels every request context, which ends open
// event streams instead of leaving them to the shutdown timeout.
func newServer(cfg config.HTTPServer, handler http.Handler) *http.Server {
	baseCtx, cancel := context.WithCancel(context.Background())

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}
	srv.RegisterOnShutdown(cancel)

	return srv
}
