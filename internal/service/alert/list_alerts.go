package alert

import (
	"context"
	"fmt"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// ListAlerts returns the alerts matching every given constraint, newest
// first, plus the total number of matches. Without a limit every match is
// returned.
func (s *Service) ListAlerts(ctx context.Context, input ListAlertsInput) (*ListResult, error) {
	if err := input.Validate(s.cfg.MaxPageSize); err != nil {
		return nil, err
	}

	filter := domain.AlertFilter{
		StoreID:  input.StoreID,
		CameraID: input.CameraID,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}
	if input.Status != "" {
		status := domain.AlertStatus(input.Status)
		filter.Status = &status
	}
	if input.Severity != "" {
		severity := domain.Severity(input.Severity)
		filter.Severity = &severity
	}
	alerts, err := s.alerts.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}

	// A short, non-empty page already tells the total.
	total := len(alerts) + filter.Offset
	full := filter.Limit > 0 && len(alerts) == filter.Limit
	if full || (len(alerts) == 0 && filter.Offset > 0) {
		if total, err = s.alerts.Count(ctx, filter); err != nil {
			return nil, fmt.Errorf("count alerts: %w", err)
		}
	}

	return &ListResult{Alerts: alerts, Total: total}, nil
}
