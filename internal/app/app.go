package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/sweetshop-backend/internal/adapter/postgres"
	sweetrepo "github.com/heartmarshall/sweetshop-backend/internal/adapter/postgres/sweet"
	userrepo "github.com/heartmarshall/sweetshop-backend/internal/adapter/postgres/user"
	redisstore "github.com/heartmarshall/sweetshop-backend/internal/adapter/redis"
	"github.com/heartmarshall/sweetshop-backend/internal/auth"
	"github.com/heartmarshall/sweetshop-backend/internal/config"
	"github.com/heartmarshall/sweetshop-backend/internal/service/account"
	"github.com/heartmarshall/sweetshop-backend/internal/service/catalog"
	"github.com/heartmarshall/sweetshop-backend/internal/service/inventory"
	"github.com/heartmarshall/sweetshop-backend/internal/transport/middleware"
	"github.com/heartmarshall/sweetshop-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	health := rest.NewHealthHandler(pool, BuildVersion())

	limiter, closeLimiter, err := newLimiter(ctx, cfg.RateLimit, health, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	handler := newAPI(cfg, logger, pool, health, limiter)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newAPI wires repositories, services and handlers on top of pool.
func newAPI(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, health *rest.HealthHandler, limiter middleware.Limiter) http.Handler {
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	sweets := sweetrepo.New(pool)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	accounts := account.NewService(logger, users, hasher, tokens, txm)
	catalogSvc := catalog.NewService(logger, sweets, txm, cfg.Catalog)
	inventorySvc := inventory.NewService(logger, sweets, catalogSvc, txm)

	return newRouter(routerDeps{
		cfg:      cfg,
		logger:   logger,
		auth:     rest.NewAuthHandler(accounts, logger),
		sweets:   rest.NewSweetHandler(catalogSvc, inventorySvc, logger),
		health:   health,
		resolver: accounts,
		limiter:  limiter,
	})
}

// newLimiter builds the rate limit store for the auth endpoints. The returned
// close func is always safe to call.
func newLimiter(ctx context.Context, cfg config.RateLimitConfig, health *rest.HealthHandler, logger *slog.Logger) (middleware.Limiter, func(), error) {
	if !cfg.Enabled {
		logger.Info("rate limiting disabled")
		return nil, func() {}, nil
	}

	if cfg.Backend == config.RateLimitBackendRedis {
		client, err := redisstore.NewClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		health.WithCheck("redis", rest.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}))
		logger.Info("rate limiting with redis", slog.String("addr", cfg.RedisAddr))
		return redisstore.NewLimiter(client, cfg.KeyPrefix), func() { _ = client.Close() }, nil
	}

	mem := middleware.NewMemoryLimiter(time.Minute)
	return mem, mem.Stop, nil
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
