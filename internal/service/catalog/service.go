// Package catalog manages the sweet catalog: creation, listing, search,
// full replacement and removal.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/sweetshop-backend/internal/config"
	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// sweetRepo defines the sweet repository interface needed by the catalog service.
type sweetRepo interface {
	Create(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	GetByID(ctx context.Context, id int64) (*domain.Sweet, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Sweet, error)
	GetByName(ctx context.Context, name string) (*domain.Sweet, error)
	List(ctx context.Context, page domain.Page) ([]domain.Sweet, error)
	Search(ctx context.Context, f domain.SweetFilter) ([]domain.Sweet, error)
	Update(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	Delete(ctx context.Context, id int64) error
}

// txManager defines the transaction manager interface needed by the catalog service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements catalog operations.
type Service struct {
	log    *slog.Logger
	sweets sweetRepo
	tx     txManager
	cfg    config.CatalogConfig
}

// NewService creates a new catalog service instance.
func NewService(logger *slog.Logger, sweets sweetRepo, tx txManager, cfg config.CatalogConfig) *Service {
	return &Service{
		log:    logger.With("service", "catalog"),
		sweets: sweets,
		tx:     tx,
		cfg:    cfg,
	}
}
