package domain

import (
	"time"

	"github.com/google/uuid"
)

// Alert aggregates detection evidence from one camera into a triage record.
// CameraID, StoreID, Type, Severity and Detections never change after creation.
type Alert struct {
	ID         uuid.UUID
	CameraID   uuid.UUID
	StoreID    uuid.UUID
	Type       AlertType
	Severity   Severity
	Status     AlertStatus
	Detections []Detection
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ResolvedAt *time.Time

	// Display join, filled by list/get queries only.
	CameraName string
	StoreName  string
}

// forwardEdges lists the status changes accepted by Transition.
var forwardEdges = map[AlertStatus][]AlertStatus{
	AlertStatusNew:          {AlertStatusAcknowledged, AlertStatusResolved},
	AlertStatusAcknowledged: {AlertStatusResolved},
}

// CanTransition reports whether the state machine allows from -> to.
// Only forward edges are accepted; moving out of RESOLVED goes through Reopen.
func CanTransition(from, to AlertStatus) bool {
	for _, s := range forwardEdges[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CheckTransition returns a *TransitionError when from -> to is not a forward edge.
func CheckTransition(from, to AlertStatus) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// IsResolved reports whether the alert is in the RESOLVED state.
func (a *Alert) IsResolved() bool {
	return a.Status == AlertStatusResolved
}

// ApplyStatus moves the alert to status at the given instant, keeping
// ResolvedAt consistent: stamped on entering RESOLVED, cleared on leaving it.
// It does not validate the edge; callers check the state machine first.
func (a *Alert) ApplyStatus(status AlertStatus, at time.Time) {
	a.Status = status
	if status == AlertStatusResolved {
		t := at
		a.ResolvedAt = &t
	} else {
		a.ResolvedAt = nil
	}
	a.Version++
	a.UpdatedAt = at
}

// AlertFilter contains filtering/pagination parameters for alert listings.
// A nil field means no constraint; set fields are ANDed together.
type AlertFilter struct {
	Status   *AlertStatus
	Severity *Severity
	StoreID  *uuid.UUID
	CameraID *uuid.UUID
	Limit    int
	Offset   int
}

// AlertEvent is published to the event feed after a committed lifecycle change.
type AlertEvent struct {
	Event      string      `json:"event"`
	AlertID    uuid.UUID   `json:"alertId"`
	StoreID    uuid.UUID   `json:"storeId"`
	CameraID   uuid.UUID   `json:"cameraId"`
	Type       AlertType   `json:"type"`
	Severity   Severity    `json:"severity"`
	Status     AlertStatus `json:"status"`
	Version    int         `json:"version"`
	OccurredAt time.Time   `json:"occurredAt"`
}

const (
	AlertEventCreated       = "alert.created"
	AlertEventStatusChanged = "alert.status_changed"
)

// NewAlertEvent builds an event snapshot of the alert.
func NewAlertEvent(event string, a *Alert, at time.Time) AlertEvent {
	return AlertEvent{
		Event:      event,
		AlertID:    a.ID,
		StoreID:    a.StoreID,
		CameraID:   a.CameraID,
		Type:       a.Type,
		Severity:   a.Severity,
		Status:     a.Status,
		Version:    a.Version,
		OccurredAt: at,
	}
}
