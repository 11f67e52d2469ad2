package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flora-partner-assignment/internal/http/handlers"
	obs "flora-partner-assignment/internal/http/middleware"
	"flora-partner-assignment/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h *handlers.Handlers, a *handlers.AssignmentHandler, logger logx.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.Observability(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/zones/{zone}", func(r chi.Router) {
		r.Get("/partners", a.ZonePartners)
		r.Get("/next-partner", a.NextPartner)
	})
	r.Route("/orders/{id}", func(r chi.Router) {
		r.Post("/auto-assign", a.AutoAssign)
		r.Post("/assign", a.Assign)
		r.Post("/decline", a.Decline)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
