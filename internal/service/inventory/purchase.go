package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

// Purchase removes stock from a sweet while holding its row lock.
// Returns ErrNotFound if absent, ErrInsufficientStock if the request exceeds stock.
func (s *Service) Purchase(ctx context.Context, actor *domain.User, input StockInput) (*domain.Sweet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Sweet

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sweet, err := s.sweets.GetByIDForUpdate(txCtx, input.SweetID)
		if err != nil {
			return err
		}

		if err := sweet.Take(input.Quantity); err != nil {
			return err
		}

		updated, err = s.sweets.UpdateQuantity(txCtx, sweet.ID, sweet.Quantity)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.Purchase: %w", err)
	}

	s.log.InfoContext(ctx, "sweet purchased",
		slog.Int64("sweet_id", updated.ID),
		slog.Int("delta", -input.Quantity),
		slog.Int("quantity", updated.Quantity),
		actorAttr(actor))

	return updated, nil
}
