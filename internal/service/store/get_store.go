package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/pkg/ctxutil"
)

// GetStore returns a store with its owner and camera/alert counts.
func (s *Service) GetStore(ctx context.Context, id uuid.UUID) (*domain.StoreSummary, error) {
	summary, err := s.stores.GetSummary(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	return summary, nil
}

// ListStores returns stores newest first, each with owner and counts.
func (s *Service) ListStores(ctx context.Context, input ListStoresInput) ([]domain.StoreSummary, error) {
	var ownerID *uuid.UUID
	if input.OwnedOnly {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return nil, domain.ErrUnauthorized
		}
		ownerID = &userID
	}

	stores, err := s.stores.ListSummaries(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}
