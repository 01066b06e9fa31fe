package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// List returns a page of sweets ordered by id.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Sweet, error) {
	page, err := input.page(s.cfg.DefaultPageLimit, s.cfg.MaxPageLimit)
	if err != nil {
		return nil, err
	}

	sweets, err := s.sweets.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("catalog.List: %w", err)
	}
	return sweets, nil
}

// Search returns sweets matching every supplied criterion, ordered by id.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.Sweet, error) {
	f, err := input.filter()
	if err != nil {
		return nil, err
	}

	sweets, err := s.sweets.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("catalog.Search: %w", err)
	}
	return sweets, nil
}

// Get returns a single sweet.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Sweet, error) {
	sweet, err := s.sweets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.Get: %w", err)
	}
	return sweet, nil
}
