package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can own stores and triage alerts.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}
