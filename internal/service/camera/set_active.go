package camera

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/pkg/ctxutil"
)

// SetCameraActive records the online flag reported for a camera.
// Reporting the current value again is a no-op and writes no audit record.
func (s *Service) SetCameraActive(ctx context.Context, input SetCameraActiveInput) (*domain.Camera, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *domain.Camera
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.cameras.GetByID(txCtx, input.CameraID)
		if err != nil {
			return fmt.Errorf("get camera: %w", err)
		}
		if current.IsActive == input.IsActive {
			updated = current
			return nil
		}

		updated, err = s.cameras.SetActive(txCtx, input.CameraID, input.IsActive)
		if err != nil {
			return fmt.Errorf("set camera active: %w", err)
		}
		updated.StoreName = current.StoreName
		changed = true

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     ctxutil.ActorFromCtx(ctx),
			EntityType: domain.EntityTypeCamera,
			EntityID:   input.CameraID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"isActive": map[string]any{"old": current.IsActive, "new": input.IsActive},
			},
			CreatedAt: s.now(),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "camera status changed",
			slog.String("camera_id", input.CameraID.String()),
			slog.Bool("is_active", input.IsActive),
		)
	}

	return updated, nil
}
