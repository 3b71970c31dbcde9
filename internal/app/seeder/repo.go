// Package seeder creates the demo tenant: an owner, one store, two cameras
// and a handful of alerts in every lifecycle state.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// UserRepo is implemented by user.Repo.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// StoreRepo is implemented by store.Repo.
type StoreRepo interface {
	ListSummaries(ctx context.Context, ownerID *uuid.UUID) ([]domain.StoreSummary, error)
	Create(ctx context.Context, s *domain.Store) (*domain.Store, error)
}

// CameraRepo is implemented by camera.Repo.
type CameraRepo interface {
	List(ctx context.Context, storeID *uuid.UUID) ([]domain.Camera, error)
	Create(ctx context.Context, c *domain.Camera) (*domain.Camera, error)
}

// AlertRepo is implemented by alert.Repo.
type AlertRepo interface {
	Count(ctx context.Context, filter domain.AlertFilter) (int, error)
	Create(ctx context.Context, a *domain.Alert) (*domain.Alert, error)
	UpdateStatus(ctx context.Context, a *domain.Alert, expectedVersion int) (*domain.Alert, error)
}

// TxManager is implemented by postgres.TxManager.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repos bundles the repositories the pipeline writes through.
type Repos struct {
	Users   UserRepo
	Stores  StoreRepo
	Cameras CameraRepo
	Alerts  AlertRepo
	Tx      TxManager
}
