package camera

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// GetCamera returns a camera with its store name.
func (s *Service) GetCamera(ctx context.Context, id uuid.UUID) (*domain.Camera, error) {
	c, err := s.cameras.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get camera: %w", err)
	}
	return c, nil
}

// ListCameras returns cameras with their store name, optionally limited to one store.
func (s *Service) ListCameras(ctx context.Context, storeID *uuid.UUID) ([]domain.Camera, error) {
	cameras, err := s.cameras.List(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("list cameras: %w", err)
	}
	return cameras, nil
}
