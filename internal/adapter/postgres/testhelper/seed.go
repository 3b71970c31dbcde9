package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates an OWNER user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Owner " + suffix,
		Email:        "owner-" + suffix + "@example.com",
		PasswordHash: "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinv",
		Role:         domain.UserRoleOwner,
		CreatedAt:    now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedStore creates a store owned by ownerID.
func SeedStore(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Store {
	t.Helper()

	suffix := uniqueSuffix()
	store := domain.Store{
		ID:        uuid.New(),
		Name:      "Store " + suffix,
		Address:   suffix + " Main St",
		OwnerID:   ownerID,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO stores (id, name, address, owner_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		store.ID, store.Name, store.Address, store.OwnerID, store.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStore: %v", err)
	}

	return store
}

// SeedCamera creates an active camera under storeID.
func SeedCamera(t *testing.T, pool *pgxpool.Pool, storeID uuid.UUID) domain.Camera {
	t.Helper()

	suffix := uniqueSuffix()
	camera := domain.Camera{
		ID:        uuid.New(),
		StoreID:   storeID,
		Name:      "Camera " + suffix,
		Location:  "Aisle " + suffix,
		IsActive:  true,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cameras (id, store_id, name, location, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		camera.ID, camera.StoreID, camera.Name, camera.Location, camera.IsActive, camera.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCamera: %v", err)
	}

	return camera
}

// SeedAlert creates a NEW alert on the camera with a single detection.
// createdAt lets callers control list ordering.
func SeedAlert(t *testing.T, pool *pgxpool.Pool, camera domain.Camera, severity domain.Severity, createdAt time.Time) domain.Alert {
	t.Helper()

	alert := domain.Alert{
		ID:       uuid.New(),
		CameraID: camera.ID,
		StoreID:  camera.StoreID,
		Type:     domain.AlertTypeLowStock,
		Severity: severity,
		Status:   domain.AlertStatusNew,
		Detections: []domain.Detection{
			{X: 10, Y: 20, Width: 30, Height: 40, Class: "low_stock", Confidence: 0.5},
		},
		Version:   1,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
		UpdatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	detections, err := json.Marshal(alert.Detections)
	if err != nil {
		t.Fatalf("testhelper: SeedAlert marshal detections: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO alerts (id, camera_id, store_id, type, severity, status, detections, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		alert.ID, alert.CameraID, alert.StoreID, string(alert.Type), string(alert.Severity), string(alert.Status),
		detections, alert.Version, alert.CreatedAt, alert.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAlert: %v", err)
	}

	return alert
}
