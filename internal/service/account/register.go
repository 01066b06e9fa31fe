package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// Register creates a new non-admin user.
// Returns ErrAlreadyExists if the email or username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account.Register hash password: %w", err)
	}

	var created *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.users.GetByEmailOrUsername(txCtx, input.Email, input.Username)
		switch {
		case err == nil:
			return fmt.Errorf("user %d holds email or username: %w", existing.ID, domain.ErrAlreadyExists)
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("lookup user: %w", err)
		}

		// A racing insert that passes the lookup is caught by the unique constraints.
		u, err := s.users.Create(txCtx, &domain.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hash,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		created = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("account.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.Int64("user_id", created.ID),
		slog.String("username", created.Username))

	return created, nil
}
