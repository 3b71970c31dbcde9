package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/internal/service/store"
)

type storeService interface {
	CreateStore(ctx context.Context, input store.CreateStoreInput) (*domain.Store, error)
	GetStore(ctx context.Context, id uuid.UUID) (*domain.StoreSummary, error)
	ListStores(ctx context.Context, input store.ListStoresInput) ([]domain.StoreSummary, error)
	DeleteStore(ctx context.Context, input store.DeleteStoreInput) error
}

// StoreHandler serves the store directory endpoints.
type StoreHandler struct {
	svc storeService
	log *slog.Logger
}

// NewStoreHandler creates a StoreHandler.
func NewStoreHandler(svc storeService, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{svc: svc, log: logger.With("handler", "store")}
}

type createStoreRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// List handles GET /api/stores. ?mine=true limits the list to the caller's stores.
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.svc.ListStores(r.Context(), store.ListStoresInput{
		OwnedOnly: r.URL.Query().Get("mine") == "true",
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]storeResponse, 0, len(stores))
	for i := range stores {
		out = append(out, toStoreSummaryResponse(&stores[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/stores/{id}.
func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	s, err := h.svc.GetStore(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStoreSummaryResponse(s))
}

// Create handles POST /api/stores.
func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	s, err := h.svc.CreateStore(r.Context(), store.CreateStoreInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStoreResponse(s))
}

// Delete handles DELETE /api/stores/{id}.
func (h *StoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteStore(r.Context(), store.DeleteStoreInput{StoreID: id}); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
