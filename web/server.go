// Package web exposes the pricing service over HTTP.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/NicholasMeacoe/irdpricer/service"
)

// Server wires the services container to the HTTP routes.
type Server struct {
	svc *service.Services
}

// NewServer builds a Server around a services container.
func NewServer(svc *service.Services) *Server {
	return &Server{svc: svc}
}

// Router builds the chi router with the full middleware chain.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(requestLogMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(corsMiddleware(s.svc.Config.CORSAllowedOrigins))
	if s.svc.Config.EnableRateLimit {
		r.Use(rateLimitMiddleware(s.svc.Config.RateLimitPerMin))
	}

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		if s.svc.Config.EnableAuth {
			r.Use(basicAuthMiddleware(s.svc.Config.AuthUser, s.svc.Config.AuthPass))
		}
		r.Post("/price", s.handlePrice)
		r.Post("/par-rate", s.handleParRate)
		r.Get("/config", s.handleConfig)
		r.Get("/cache", s.handleCacheMetrics)
	})

	return r
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
