// Package router monta o chi.Router da API.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/barber-checkout/internal/infra/http/handlers"
	"github.com/xavierca1/barber-checkout/internal/infra/http/middleware"
)

const CheckoutPath = "/api/create-checkout"

type Deps struct {
	Checkout *handlers.CheckoutHandler
	Plans    *handlers.PlanHandler
	Health   *handlers.HealthHandler
	Logger   *slog.Logger

	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter // nil = sem limite
	StaticDir      string                  // vazio = não serve o front
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With", "X-CSRF-Token", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,

		// O preflight segue para o handler, que responde 200 sem corpo.
		OptionsPassthrough: true,
	}))

	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// Todos os métodos caem no handler: ele responde OPTIONS e 405 sozinho.
	var checkoutMW []func(http.Handler) http.Handler
	if d.RateLimiter != nil {
		checkoutMW = append(checkoutMW, middleware.RateLimit(d.RateLimiter))
	}
	r.With(checkoutMW...).HandleFunc(CheckoutPath, d.Checkout.Handle)

	r.Get("/api/plans", d.Plans.List)
	r.Get("/health", d.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	if d.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(d.StaticDir)))
	}

	return r
}
