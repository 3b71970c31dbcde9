package alert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/pkg/ctxutil"
)

// CreateAlert validates a detection batch and records a NEW alert on the camera.
// The alert's store is taken from the camera at insert time. Fails with
// domain.ErrNotFound when the camera does not exist.
func (s *Service) CreateAlert(ctx context.Context, input CreateAlertInput) (*domain.Alert, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()

	var created *domain.Alert
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.alerts.Create(txCtx, &domain.Alert{
			ID:         uuid.New(),
			CameraID:   input.CameraID,
			Type:       input.Type,
			Severity:   input.Severity,
			Status:     domain.AlertStatusNew,
			Detections: input.Detections,
			Version:    1,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if createErr != nil {
			return fmt.Errorf("create alert: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     ctxutil.ActorFromCtx(ctx),
			EntityType: domain.EntityTypeAlert,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"cameraId":   created.CameraID.String(),
				"storeId":    created.StoreID.String(),
				"type":       string(created.Type),
				"severity":   string(created.Severity),
				"detections": len(created.Detections),
			},
			CreatedAt: now,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AlertCreated(created.Type, created.Severity)
	s.publish(ctx, domain.NewAlertEvent(domain.AlertEventCreated, created, now))

	s.log.InfoContext(ctx, "alert created",
		slog.String("alert_id", created.ID.String()),
		slog.String("camera_id", created.CameraID.String()),
		slog.String("store_id", created.StoreID.String()),
		slog.String("type", string(created.Type)),
		slog.String("severity", string(created.Severity)),
		slog.Float64("max_confidence", domain.MaxConfidence(created.Detections)),
	)

	return created, nil
}
