// Command promote grants or revokes the admin flag of an account by email.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com [--revoke]
//
// Exit codes: 0 = success, 1 = error or unknown email.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/sweetshop-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/sweetshop-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/sweetshop-backend/internal/app"
	"github.com/heartmarshall/sweetshop-backend/internal/auth"
	"github.com/heartmarshall/sweetshop-backend/internal/config"
	"github.com/heartmarshall/sweetshop-backend/internal/domain"
	"github.com/heartmarshall/sweetshop-backend/internal/service/account"
)

func main() {
	email := flag.String("email", "", "email of the account to change")
	revoke := flag.Bool("revoke", false, "remove admin rights instead of granting them")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--revoke]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := account.NewService(
		logger,
		userrepo.New(pool),
		auth.NewPasswordHasher(cfg.Auth.PasswordHashCost),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		postgres.NewTxManager(pool),
	)

	user, err := svc.SetAdmin(ctx, *email, !*revoke)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Error("no account with this email", slog.String("email", *email))
		os.Exit(1)
	}
	if err != nil {
		logger.Error("change admin flag", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("admin flag updated",
		slog.String("username", user.Username),
		slog.Bool("is_admin", user.IsAdmin),
	)
}
