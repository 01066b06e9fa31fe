package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a sweet while holding its row lock. Returns ErrNotFound if absent.
// Authorization is the caller's concern.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.sweets.GetByIDForUpdate(txCtx, id); err != nil {
			return err
		}
		return s.sweets.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("catalog.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "sweet deleted", slog.Int64("sweet_id", id))
	return nil
}
