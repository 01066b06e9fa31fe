// Package account registers users, authenticates them and resolves bearer
// tokens back to accounts.
package account

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the account service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error)
	SetAdmin(ctx context.Context, email string, isAdmin bool) (*domain.User, error)
}

// passwordHasher defines the password hashing interface needed by the account service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// tokenManager defines the token interface needed by the account service.
type tokenManager interface {
	GenerateAccessToken(subject string) (string, error)
	ValidateAccessToken(token string) (string, error)
}

// txManager defines the transaction manager interface needed by the account service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
	tokens tokenManager
	tx     txManager

	decoyOnce sync.Once
	decoyHash string
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	hasher passwordHasher,
	tokens tokenManager,
	tx txManager,
) *Service {
	return &Service{
		log:    logger.With("service", "account"),
		users:  users,
		hasher: hasher,
		tokens: tokens,
		tx:     tx,
	}
}

// burnVerify runs a verification against a throwaway hash so that unknown
// emails cost the same as wrong passwords.
func (s *Service) burnVerify(password string) {
	s.decoyOnce.Do(func() {
		s.decoyHash, _ = s.hasher.Hash("decoy-password")
	})
	_ = s.hasher.Verify(password, s.decoyHash)
}
