package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// SetAdmin grants or revokes the admin flag of the account with the given email.
// Returns ErrNotFound if no such account exists.
func (s *Service) SetAdmin(ctx context.Context, email string, isAdmin bool) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	user, err := s.users.SetAdmin(ctx, email, isAdmin)
	if err != nil {
		return nil, fmt.Errorf("account.SetAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "admin flag changed",
		slog.Int64("user_id", user.ID),
		slog.Bool("is_admin", user.IsAdmin))

	return user, nil
}
