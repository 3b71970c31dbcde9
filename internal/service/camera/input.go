package camera

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

const (
	maxNameLength     = 200
	maxLocationLength = 200
)

// CreateCameraInput holds the parameters for registering a camera.
type CreateCameraInput struct {
	StoreID  uuid.UUID
	Name     string
	Location string
	IsActive bool
}

// Validate checks all fields and collects all errors.
func (i CreateCameraInput) Validate() error {
	var errs []domain.FieldError

	if i.StoreID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "storeId", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}

	if len(strings.TrimSpace(i.Location)) > maxLocationLength {
		errs = append(errs, domain.FieldError{Field: "location", Message: "too long (max 200)"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetCameraActiveInput flips the online flag of a camera.
type SetCameraActiveInput struct {
	CameraID uuid.UUID
	IsActive bool
}

// Validate checks all fields.
func (i SetCameraActiveInput) Validate() error {
	if i.CameraID == uuid.Nil {
		return domain.NewValidationError("cameraId", "required")
	}
	return nil
}
