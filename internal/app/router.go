package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/sweetshop-backend/internal/config"
	"github.com/heartmarshall/sweetshop-backend/internal/domain"
	"github.com/heartmarshall/sweetshop-backend/internal/transport/middleware"
	"github.com/heartmarshall/sweetshop-backend/internal/transport/rest"
)

// tokenResolver maps a bearer token to its account.
type tokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}

// routerDeps is everything the HTTP surface needs. limiter may be nil when
// rate limiting is disabled.
type routerDeps struct {
	cfg      *config.Config
	logger   *slog.Logger
	auth     *rest.AuthHandler
	sweets   *rest.SweetHandler
	health   *rest.HealthHandler
	resolver tokenResolver
	limiter  middleware.Limiter
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.logger),
		middleware.Recovery(d.logger),
	))
	r.Use(middleware.CORS(d.cfg.CORS))

	r.Get("/", d.health.Root)
	r.Get("/live", d.health.Live)
	r.Get("/ready", d.health.Ready)
	r.Get("/health", d.health.Health)

	r.Route("/api/auth", func(r chi.Router) {
		r.With(limit(d, "register", d.cfg.RateLimit.RegisterPerMinute)...).Post("/register", d.auth.Register)
		r.With(limit(d, "login", d.cfg.RateLimit.LoginPerMinute)...).Post("/login", d.auth.Login)
	})

	r.Route("/api/sweets", func(r chi.Router) {
		r.Use(middleware.Auth(d.resolver, d.logger))

		r.Post("/create", d.sweets.Create)
		r.Get("/", d.sweets.List)
		r.Get("/search", d.sweets.Search)
		r.Get("/{id}", d.sweets.Get)
		r.Put("/{id}", d.sweets.Update)
		r.Delete("/{id}", d.sweets.Delete)
		r.Post("/{id}/purchase", d.sweets.Purchase)
		r.Post("/{id}/restock", d.sweets.Restock)
	})

	return r
}

func limit(d routerDeps, scope string, perMinute int) []func(http.Handler) http.Handler {
	if d.limiter == nil {
		return nil
	}
	return []func(http.Handler) http.Handler{
		middleware.RateLimit(d.limiter, scope, perMinute, d.logger),
	}
}
