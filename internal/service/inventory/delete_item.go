package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// DeleteItem removes a sweet on behalf of actor.
// Returns ErrForbidden unless actor is an admin, ErrNotFound if the sweet is absent.
func (s *Service) DeleteItem(ctx context.Context, actor *domain.User, id int64) error {
	if !actor.CanDeleteSweets() {
		return fmt.Errorf("inventory.DeleteItem: %w", domain.ErrForbidden)
	}

	if err := s.remover.Delete(ctx, id); err != nil {
		return fmt.Errorf("inventory.DeleteItem: %w", err)
	}

	s.log.InfoContext(ctx, "sweet removed",
		slog.Int64("sweet_id", id),
		actorAttr(actor))

	return nil
}
