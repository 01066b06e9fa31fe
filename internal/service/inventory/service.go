// Package inventory applies stock policy to catalog items: purchases,
// restocks and privileged removal.
package inventory

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// sweetRepo defines the sweet repository interface needed by the inventory service.
type sweetRepo interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Sweet, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.Sweet, error)
}

// sweetRemover deletes a sweet under its row lock.
type sweetRemover interface {
	Delete(ctx context.Context, id int64) error
}

// txManager defines the transaction manager interface needed by the inventory service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements inventory operations.
type Service struct {
	log     *slog.Logger
	sweets  sweetRepo
	remover sweetRemover
	tx      txManager
}

// NewService creates a new inventory service instance.
func NewService(logger *slog.Logger, sweets sweetRepo, remover sweetRemover, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "inventory"),
		sweets:  sweets,
		remover: remover,
		tx:      tx,
	}
}

func actorAttr(actor *domain.User) slog.Attr {
	if actor == nil {
		return slog.String("user", "")
	}
	return slog.String("user", actor.Username)
}
