package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// Create adds a new sweet. Returns ErrAlreadyExists if the name is taken.
func (s *Service) Create(ctx context.Context, input SweetInput) (*domain.Sweet, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.sweets.GetByName(ctx, input.Name)
	switch {
	case err == nil:
		return nil, fmt.Errorf("catalog.Create: sweet %d named %q: %w", existing.ID, input.Name, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("catalog.Create lookup: %w", err)
	}

	created, err := s.sweets.Create(ctx, input.toSweet(0))
	if err != nil {
		return nil, fmt.Errorf("catalog.Create: %w", err)
	}

	s.log.InfoContext(ctx, "sweet created",
		slog.Int64("sweet_id", created.ID),
		slog.String("name", created.Name),
		slog.Int("quantity", created.Quantity))

	return created, nil
}
