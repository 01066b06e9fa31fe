package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// ResolveToken validates a bearer token and loads the account it names.
// Returns ErrUnauthorized for any invalid token or unknown subject.
func (s *Service) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return nil, fmt.Errorf("account.ResolveToken: %w: %v", domain.ErrUnauthorized, err)
	}
	return s.FindBySubject(ctx, subject)
}

// FindBySubject returns the user whose username is subject.
func (s *Service) FindBySubject(ctx context.Context, subject string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("account.FindBySubject: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("account.FindBySubject: %w", err)
	}
	return user, nil
}
