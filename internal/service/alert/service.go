// Package alert implements the alert lifecycle: creation from detection
// batches, status transitions, reopening, and filtered listing.
package alert

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/config"
	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

type alertRepo interface {
	Create(ctx context.Context, a *domain.Alert) (*domain.Alert, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	UpdateStatus(ctx context.Context, a *domain.Alert, expectedVersion int) (*domain.Alert, error)
	List(ctx context.Context, filter domain.AlertFilter) ([]domain.Alert, error)
	Count(ctx context.Context, filter domain.AlertFilter) (int, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	PublishAlertEvent(ctx context.Context, event domain.AlertEvent) error
}

type metricsRecorder interface {
	AlertCreated(alertType domain.AlertType, severity domain.Severity)
	AlertTransitioned(from, to domain.AlertStatus)
}

// MaxHistoryRecords caps the audit history returned for a single alert.
const MaxHistoryRecords = 100

// Service provides alert lifecycle operations.
type Service struct {
	alerts  alertRepo
	audit   auditRepo
	tx      txManager
	events  eventPublisher
	metrics metricsRecorder
	cfg     config.AlertsConfig
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Alert service.
func NewService(
	log *slog.Logger,
	alerts alertRepo,
	audit auditRepo,
	tx txManager,
	events eventPublisher,
	metrics metricsRecorder,
	cfg config.AlertsConfig,
) *Service {
	return &Service{
		alerts:  alerts,
		audit:   audit,
		tx:      tx,
		events:  events,
		metrics: metrics,
		cfg:     cfg,
		log:     log.With("service", "alert"),
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// publish sends a lifecycle event after commit. The change is already durable,
// so a failed publish is logged and swallowed.
func (s *Service) publish(ctx context.Context, event domain.AlertEvent) {
	if err := s.events.PublishAlertEvent(ctx, event); err != nil {
		s.log.WarnContext(ctx, "alert event publish failed",
			slog.String("event", event.Event),
			slog.String("alert_id", event.AlertID.String()),
			slog.String("error", err.Error()),
		)
	}
}
