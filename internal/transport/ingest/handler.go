// Package ingest consumes analysis pipeline output from NATS: detection
// batches become alerts and camera status messages toggle cameras.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/internal/metrics"
	"github.com/heartmarshall/shelfwatch-backend/internal/service/alert"
	"github.com/heartmarshall/shelfwatch-backend/internal/service/camera"
)

type alertCreator interface {
	CreateAlert(ctx context.Context, input alert.CreateAlertInput) (*domain.Alert, error)
}

type cameraActivator interface {
	SetCameraActive(ctx context.Context, input camera.SetCameraActiveInput) (*domain.Camera, error)
}

type ingestRecorder interface {
	IngestMessage(subject, result string)
}

// detectionMessage is one detection batch published by the pipeline.
type detectionMessage struct {
	CameraID   uuid.UUID          `json:"cameraId"`
	Type       domain.AlertType   `json:"type"`
	Severity   domain.Severity    `json:"severity"`
	Detections []domain.Detection `json:"detections"`
}

type cameraStatusMessage struct {
	CameraID uuid.UUID `json:"cameraId"`
	IsActive *bool     `json:"isActive"`
}

// Handler turns raw message payloads into service calls. Messages are never
// redelivered: a payload that fails is counted, logged and dropped.
type Handler struct {
	alerts  alertCreator
	cameras cameraActivator
	metrics ingestRecorder
	log     *slog.Logger
}

// NewHandler creates a message handler.
func NewHandler(alerts alertCreator, cameras cameraActivator, metrics ingestRecorder, logger *slog.Logger) *Handler {
	return &Handler{
		alerts:  alerts,
		cameras: cameras,
		metrics: metrics,
		log:     logger.With("component", "ingest"),
	}
}

// HandleDetections creates an alert from a detection batch and returns the
// metrics result label.
func (h *Handler) HandleDetections(ctx context.Context, subject string, data []byte) string {
	var msg detectionMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return h.finish(ctx, subject, domain.NewValidationError("payload", err.Error()))
	}

	a, err := h.alerts.CreateAlert(ctx, alert.CreateAlertInput{
		CameraID:   msg.CameraID,
		Type:       msg.Type,
		Severity:   msg.Severity,
		Detections: msg.Detections,
	})
	if err != nil {
		return h.finish(ctx, subject, err, slog.String("camera_id", msg.CameraID.String()))
	}

	h.log.DebugContext(ctx, "detection batch ingested",
		slog.String("alert_id", a.ID.String()),
		slog.Int("detections", len(msg.Detections)),
	)
	return h.finish(ctx, subject, nil)
}

// HandleCameraStatus applies an isActive flag reported by the pipeline.
func (h *Handler) HandleCameraStatus(ctx context.Context, subject string, data []byte) string {
	var msg cameraStatusMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return h.finish(ctx, subject, domain.NewValidationError("payload", err.Error()))
	}
	if msg.IsActive == nil {
		return h.finish(ctx, subject, domain.NewValidationError("isActive", "required"))
	}

	_, err := h.cameras.SetCameraActive(ctx, camera.SetCameraActiveInput{
		CameraID: msg.CameraID,
		IsActive: *msg.IsActive,
	})
	return h.finish(ctx, subject, err, slog.String("camera_id", msg.CameraID.String()))
}

func (h *Handler) finish(ctx context.Context, subject string, err error, attrs ...any) string {
	result := resultOf(err)
	h.metrics.IngestMessage(subject, result)

	if err != nil {
		attrs = append(attrs, slog.String("subject", subject), slog.String("error", err.Error()))
		if result == metrics.ResultInvalid {
			h.log.WarnContext(ctx, "ingest message dropped", attrs...)
		} else {
			h.log.ErrorContext(ctx, "ingest message failed", attrs...)
		}
	}
	return result
}

// resultOf classifies an outcome. Bad payloads and unknown cameras are the
// producer's fault; anything else is ours.
func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}
