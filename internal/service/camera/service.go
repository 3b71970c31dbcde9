// Package camera implements the camera directory.
package camera

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

type cameraRepo interface {
	Create(ctx context.Context, c *domain.Camera) (*domain.Camera, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Camera, error)
	List(ctx context.Context, storeID *uuid.UUID) ([]domain.Camera, error)
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) (*domain.Camera, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides camera directory operations.
type Service struct {
	cameras cameraRepo
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Camera service.
func NewService(
	log *slog.Logger,
	cameras cameraRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		cameras: cameras,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "camera"),
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}
