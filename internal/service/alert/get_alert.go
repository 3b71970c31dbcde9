package alert

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// GetAlert returns a single alert with camera and store names.
func (s *Service) GetAlert(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	a, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// AlertHistory returns the audit trail of an alert, newest first.
func (s *Service) AlertHistory(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error) {
	if _, err := s.alerts.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}

	records, err := s.audit.GetByEntity(ctx, domain.EntityTypeAlert, id, MaxHistoryRecords)
	if err != nil {
		return nil, fmt.Errorf("alert history: %w", err)
	}
	return records, nil
}
