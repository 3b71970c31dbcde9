package camera

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/pkg/ctxutil"
)

// CreateCamera registers a camera in an existing store.
// Fails with domain.ErrNotFound when the store does not exist.
func (s *Service) CreateCamera(ctx context.Context, input CreateCameraInput) (*domain.Camera, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var created *domain.Camera
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.cameras.Create(txCtx, &domain.Camera{
			ID:        uuid.New(),
			StoreID:   input.StoreID,
			Name:      name,
			Location:  strings.TrimSpace(input.Location),
			IsActive:  input.IsActive,
			CreatedAt: s.now(),
		})
		if createErr != nil {
			if errors.Is(createErr, domain.ErrNotFound) {
				return fmt.Errorf("store %s: %w", input.StoreID, domain.ErrNotFound)
			}
			return fmt.Errorf("create camera: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     &userID,
			EntityType: domain.EntityTypeCamera,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"storeId":  created.StoreID.String(),
				"name":     map[string]any{"new": created.Name},
				"isActive": created.IsActive,
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

	s.log.InfoContext(ctx, "camera created",
		slog.String("user_id", userID.String()),
		slog.String("camera_id", created.ID.String()),
		slog.String("store_id", created.StoreID.String()),
	)

	return created, nil
}
