package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// Update replaces every writable field of a sweet while holding its row lock.
// Returns ErrNotFound if absent, ErrAlreadyExists if the new name belongs to another sweet.
func (s *Service) Update(ctx context.Context, id int64, input SweetInput) (*domain.Sweet, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Sweet

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.sweets.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if current.Name != input.Name {
			other, err := s.sweets.GetByName(txCtx, input.Name)
			switch {
			case err == nil && other.ID != id:
				return fmt.Errorf("sweet %d named %q: %w", other.ID, input.Name, domain.ErrAlreadyExists)
			case err != nil && !errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("lookup name: %w", err)
			}
		}

		updated, err = s.sweets.Update(txCtx, input.toSweet(id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.Update: %w", err)
	}

	s.log.InfoContext(ctx, "sweet updated",
		slog.Int64("sweet_id", updated.ID),
		slog.Int("quantity", updated.Quantity))

	return updated, nil
}
