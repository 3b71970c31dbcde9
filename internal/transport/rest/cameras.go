package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/internal/service/camera"
)

type cameraService interface {
	CreateCamera(ctx context.Context, input camera.CreateCameraInput) (*domain.Camera, error)
	GetCamera(ctx context.Context, id uuid.UUID) (*domain.Camera, error)
	ListCameras(ctx context.Context, storeID *uuid.UUID) ([]domain.Camera, error)
	SetCameraActive(ctx context.Context, input camera.SetCameraActiveInput) (*domain.Camera, error)
}

// CameraHandler serves the camera directory endpoints.
type CameraHandler struct {
	svc cameraService
	log *slog.Logger
}

// NewCameraHandler creates a CameraHandler.
func NewCameraHandler(svc cameraService, logger *slog.Logger) *CameraHandler {
	return &CameraHandler{svc: svc, log: logger.With("handler", "camera")}
}

type createCameraRequest struct {
	StoreID  uuid.UUID `json:"storeId"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	IsActive *bool     `json:"isActive"`
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

// List handles GET /api/cameras?storeId=.
func (h *CameraHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID, err := queryUUID(r, "storeId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	cameras, err := h.svc.ListCameras(r.Context(), storeID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]cameraResponse, 0, len(cameras))
	for i := range cameras {
		out = append(out, toCameraResponse(&cameras[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/cameras/{id}.
func (h *CameraHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.GetCamera(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCameraResponse(c))
}

// Create handles POST /api/cameras. isActive defaults to true.
func (h *CameraHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCameraRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	c, err := h.svc.CreateCamera(r.Context(), camera.CreateCameraInput{
		StoreID:  req.StoreID,
		Name:     req.Name,
		Location: req.Location,
		IsActive: isActive,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCameraResponse(c))
}

// SetActive handles PUT /api/cameras/{id}/active with {isActive}.
func (h *CameraHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req setActiveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if req.IsActive == nil {
		respondError(w, r, h.log, domain.NewValidationError("isActive", "required"))
		return
	}

	c, err := h.svc.SetCameraActive(r.Context(), camera.SetCameraActiveInput{
		CameraID: id,
		IsActive: *req.IsActive,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCameraResponse(c))
}
