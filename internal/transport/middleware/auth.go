package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
	"github.com/heartmarshall/sweetshop-backend/pkg/ctxutil"
)

type userResolver interface {
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}

// Auth requires a bearer token and stores the resolved user in the context.
// Missing or invalid credentials get 401 with a Bearer challenge.
func Auth(resolver userResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}

			user, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					unauthorized(w)
					return
				}
				logger.ErrorContext(r.Context(), "resolve token",
					slog.String("error", err.Error()),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())))
				writeError(w, http.StatusInternalServerError, "internal", "Internal server error")
				return
			}

			recordUser(r.Context(), user.ID)
			ctx := ctxutil.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "unauthenticated", "Could not validate credentials")
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
