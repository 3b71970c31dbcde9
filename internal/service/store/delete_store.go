package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/pkg/ctxutil"
)

// DeleteStore removes a store owned by the caller. Deletion is blocked with
// domain.ErrConflict while any camera belongs to the store.
func (s *Service) DeleteStore(ctx context.Context, input DeleteStoreInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.stores.GetSummary(txCtx, input.StoreID)
		if err != nil {
			return fmt.Errorf("get store: %w", err)
		}
		if current.OwnerID != userID {
			return domain.ErrForbidden
		}
		if current.CameraCount > 0 {
			return fmt.Errorf("store %s has %d cameras: %w", input.StoreID, current.CameraCount, domain.ErrConflict)
		}

		if err := s.stores.Delete(txCtx, input.StoreID); err != nil {
			return fmt.Errorf("delete store: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     &userID,
			EntityType: domain.EntityTypeStore,
			EntityID:   input.StoreID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": map[string]any{"old": current.Name},
			},
			CreatedAt: s.now(),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "store deleted",
		slog.String("user_id", userID.String()),
		slog.String("store_id", input.StoreID.String()),
	)

	return nil
}
