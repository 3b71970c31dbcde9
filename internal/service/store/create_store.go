package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/pkg/ctxutil"
)

// CreateStore creates a store owned by the authenticated user.
func (s *Service) CreateStore(ctx context.Context, input CreateStoreInput) (*domain.Store, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)

	var created *domain.Store
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.stores.Create(txCtx, &domain.Store{
			ID:        uuid.New(),
			Name:      name,
			Address:   address,
			OwnerID:   userID,
			CreatedAt: s.now(),
		})
		if createErr != nil {
			return fmt.Errorf("create store: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     &userID,
			EntityType: domain.EntityTypeStore,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":    map[string]any{"new": name},
				"address": map[string]any{"new": address},
			},
			CreatedAt: created.CreatedAt,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "store created",
		slog.String("user_id", userID.String()),
		slog.String("store_id", created.ID.String()),
		slog.String("name", name),
	)

	return created, nil
}
