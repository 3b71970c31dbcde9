package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/internal/service/alert"
)

type alertService interface {
	CreateAlert(ctx context.Context, input alert.CreateAlertInput) (*domain.Alert, error)
	TransitionAlert(ctx context.Context, input alert.TransitionAlertInput) (*domain.Alert, error)
	ReopenAlert(ctx context.Context, input alert.ReopenAlertInput) (*domain.Alert, error)
	ListAlerts(ctx context.Context, input alert.ListAlertsInput) (*alert.ListResult, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	AlertHistory(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error)
}

// totalCountHeader carries the unpaginated match count of list responses.
const totalCountHeader = "X-Total-Count"

// AlertHandler serves the alert lifecycle endpoints.
type AlertHandler struct {
	svc alertService
	log *slog.Logger
}

// NewAlertHandler creates an AlertHandler.
func NewAlertHandler(svc alertService, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, log: logger.With("handler", "alert")}
}

type createAlertRequest struct {
	CameraID   uuid.UUID          `json:"cameraId"`
	Type       string             `json:"type"`
	Severity   string             `json:"severity"`
	Detections []domain.Detection `json:"detections"`
}

type transitionAlertRequest struct {
	ID      uuid.UUID `json:"id"`
	Status  string    `json:"status"`
	Version *int      `json:"version"`
}

type reopenAlertRequest struct {
	Version *int `json:"version"`
}

// List handles GET /api/alerts. Empty status/severity mean no constraint.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	storeID, err := queryUUID(r, "storeId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	cameraID, err := queryUUID(r, "cameraId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.ListAlerts(r.Context(), alert.ListAlertsInput{
		Status:   q.Get("status"),
		Severity: q.Get("severity"),
		StoreID:  storeID,
		CameraID: cameraID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.Header().Set(totalCountHeader, strconv.Itoa(result.Total))
	writeJSON(w, http.StatusOK, toAlertResponses(result.Alerts))
}

// Get handles GET /api/alerts/{id}.
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	a, err := h.svc.GetAlert(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAlertResponse(a))
}

// History handles GET /api/alerts/{id}/history.
func (h *AlertHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	records, err := h.svc.AlertHistory(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuditResponses(records))
}

// Create handles POST /api/alerts.
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAlertRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	a, err := h.svc.CreateAlert(r.Context(), alert.CreateAlertInput{
		CameraID:   req.CameraID,
		Type:       domain.AlertType(req.Type),
		Severity:   domain.Severity(req.Severity),
		Detections: req.Detections,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAlertResponse(a))
}

// Transition handles PATCH /api/alerts with {id, status, version?}.
func (h *AlertHandler) Transition(w http.ResponseWriter, r *http.Request) {
	var req transitionAlertRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	a, err := h.svc.TransitionAlert(r.Context(), alert.TransitionAlertInput{
		AlertID:         req.ID,
		Status:          domain.AlertStatus(req.Status),
		ExpectedVersion: req.Version,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAlertResponse(a))
}

// Reopen handles POST /api/alerts/{id}/reopen. The body is optional.
func (h *AlertHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req reopenAlertRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	a, err := h.svc.ReopenAlert(r.Context(), alert.ReopenAlertInput{
		AlertID:         id,
		ExpectedVersion: req.Version,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAlertResponse(a))
}
