package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xavierca1/barber-checkout/internal/config"
	"github.com/xavierca1/barber-checkout/internal/infra/catalog"
	"github.com/xavierca1/barber-checkout/internal/infra/http/handlers"
	"github.com/xavierca1/barber-checkout/internal/infra/http/middleware"
	"github.com/xavierca1/barber-checkout/internal/infra/http/router"
	"github.com/xavierca1/barber-checkout/internal/infra/integration/stripe"
	"github.com/xavierca1/barber-checkout/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("erro ao carregar configurações", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if missing := cfg.Missing(); len(missing) > 0 {
		logger.Warn("configuração incompleta: checkout vai responder 500", "missing", missing)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Planos
	registry := catalog.NewRegistryFromConfig(cfg.Plans)

	// 2. Gateway (só existe com chave; sem ela o use case responde erro de configuração)
	var gateway usecase.PaymentGateway
	if cfg.Stripe.SecretKey != "" {
		gateway = stripe.NewClient(cfg.Stripe.SecretKey, stripe.Options{
			APIURL: cfg.Stripe.APIURL,
			Logger: logger,
		})
	}

	// 3. UseCase
	createCheckoutUC := usecase.NewCreateCheckoutUseCase(
		registry,
		gateway,
		usecase.CheckoutSettings{
			SuccessURL:       cfg.Return.SuccessURL,
			CancelURL:        cfg.Return.CancelURL,
			DefaultCancelURL: cfg.Return.DefaultCancelURL,
		},
		middleware.CheckoutMetrics{},
		logger,
	)

	// 4. Router
	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimit, cfg.HTTP.RateWindow)
		limiter.StartCleanup(ctx, 10*time.Minute)
	}

	r := router.New(router.Deps{
		Checkout:       handlers.NewCheckoutHandler(createCheckoutUC),
		Plans:          handlers.NewPlanHandler(registry),
		Health:         handlers.NewHealthHandler(cfg.Version, gateway != nil, registry),
		Logger:         logger,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RateLimiter:    limiter,
		StaticDir:      cfg.HTTP.StaticDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("API de checkout rodando", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("servidor parou", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("erro no shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("servidor encerrado")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	var handler slog.Handler
	if cfg.Log.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(middleware.ContextHandler{Handler: handler})
}
