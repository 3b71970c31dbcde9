package alert

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// CreateAlertInput is the ingestion contract: one detection batch for a camera.
type CreateAlertInput struct {
	CameraID   uuid.UUID
	Type       domain.AlertType
	Severity   domain.Severity
	Detections []domain.Detection
}

// Validate checks all fields and collects all errors.
func (i CreateAlertInput) Validate() error {
	var errs []domain.FieldError

	if i.CameraID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "cameraId", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of EMPTY_SHELF, LOW_STOCK"})
	}
	if !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "must be one of LOW, MEDIUM, HIGH"})
	}
	errs = append(errs, domain.ValidateDetections(i.Detections)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransitionAlertInput requests a forward status change.
// ExpectedVersion, when set, must equal the stored version.
type TransitionAlertInput struct {
	AlertID         uuid.UUID
	Status          domain.AlertStatus
	ExpectedVersion *int
}

// Validate checks all fields and collects all errors.
func (i TransitionAlertInput) Validate() error {
	var errs []domain.FieldError

	if i.AlertID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of NEW, ACKNOWLEDGED, RESOLVED"})
	}
	if i.ExpectedVersion != nil && *i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "must be >= 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReopenAlertInput moves a RESOLVED alert back to NEW.
type ReopenAlertInput struct {
	AlertID         uuid.UUID
	ExpectedVersion *int
}

// Validate checks all fields and collects all errors.
func (i ReopenAlertInput) Validate() error {
	var errs []domain.FieldError

	if i.AlertID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.ExpectedVersion != nil && *i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "must be >= 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListAlertsInput holds the raw list constraints. Empty Status or Severity
// means no constraint. Zero Limit returns every match; paging is opt-in.
type ListAlertsInput struct {
	Status   string
	Severity string
	StoreID  *uuid.UUID
	CameraID *uuid.UUID
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors. maxLimit is the configured cap.
func (i ListAlertsInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Status != "" && !domain.AlertStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of NEW, ACKNOWLEDGED, RESOLVED"})
	}
	if i.Severity != "" && !domain.Severity(i.Severity).IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "must be one of LOW, MEDIUM, HIGH"})
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", maxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListResult is one page of alerts plus the unpaginated match count.
type ListResult struct {
	Alerts []domain.Alert
	Total  int
}
