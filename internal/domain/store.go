package domain

import (
	"time"

	"github.com/google/uuid"
)

// Store is a physical retail location. It owns cameras and, through them, alerts.
type Store struct {
	ID        uuid.UUID
	Name      string
	Address   string
	OwnerID   uuid.UUID
	CreatedAt time.Time
}

// StoreSummary is a Store joined with its owner and aggregate counts,
// used for the dashboard store list.
type StoreSummary struct {
	Store
	OwnerName   string
	OwnerEmail  string
	CameraCount int
	AlertCount  int
}

// Camera is a monitored video source scoped to exactly one Store.
// IsActive is set by the ingestion side; no liveness protocol backs it.
type Camera struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	Location  string
	IsActive  bool
	CreatedAt time.Time

	// Display join, filled by list queries only.
	StoreName string
}
