package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}

// Authenticate checks email and password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong,
// without revealing which.
func (s *Service) Authenticate(ctx context.Context, input LoginInput) (*domain.User, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.burnVerify(input.Password)
			return nil, fmt.Errorf("account.Authenticate: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("account.Authenticate get user: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, fmt.Errorf("account.Authenticate: %w", domain.ErrUnauthorized)
	}

	return user, nil
}

// Login authenticates the user and issues an access token whose subject is the username.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.Authenticate(ctx, input)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("account.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return &LoginResult{AccessToken: token, User: user}, nil
}
