// Package store implements the store directory: creation, lookup with
// aggregate counts, and deletion.
package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

type storeRepo interface {
	Create(ctx context.Context, s *domain.Store) (*domain.Store, error)
	GetSummary(ctx context.Context, id uuid.UUID) (*domain.StoreSummary, error)
	ListSummaries(ctx context.Context, ownerID *uuid.UUID) ([]domain.StoreSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides store directory operations.
type Service struct {
	stores storeRepo
	audit  auditLogger
	tx     txManager
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new Store service.
func NewService(
	log *slog.Logger,
	stores storeRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		stores: stores,
		audit:  audit,
		tx:     tx,
		log:    log.With("service", "store"),
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}
