package alert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/pkg/ctxutil"
)

// TransitionAlert applies a forward status change (NEW→ACKNOWLEDGED,
// ACKNOWLEDGED→RESOLVED, NEW→RESOLVED). Any other edge fails with
// domain.ErrInvalidTransition; a stale ExpectedVersion fails with domain.ErrConflict.
func (s *Service) TransitionAlert(ctx context.Context, input TransitionAlertInput) (*domain.Alert, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.changeStatus(ctx, input.AlertID, input.ExpectedVersion, input.Status,
		func(from domain.AlertStatus) error {
			return domain.CheckTransition(from, input.Status)
		})
}

// ReopenAlert moves a RESOLVED alert back to NEW and clears resolvedAt.
// Reopening an alert that is not RESOLVED fails with domain.ErrInvalidTransition.
func (s *Service) ReopenAlert(ctx context.Context, input ReopenAlertInput) (*domain.Alert, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.changeStatus(ctx, input.AlertID, input.ExpectedVersion, domain.AlertStatusNew,
		func(from domain.AlertStatus) error {
			if from != domain.AlertStatusResolved {
				return &domain.TransitionError{From: from, To: domain.AlertStatusNew}
			}
			return nil
		})
}

// changeStatus is the locked read-check-write shared by transition and reopen.
func (s *Service) changeStatus(
	ctx context.Context,
	alertID uuid.UUID,
	expectedVersion *int,
	to domain.AlertStatus,
	check func(from domain.AlertStatus) error,
) (*domain.Alert, error) {
	now := s.now()

	var (
		updated *domain.Alert
		from    domain.AlertStatus
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.alerts.GetForUpdate(txCtx, alertID)
		if err != nil {
			return fmt.Errorf("get alert: %w", err)
		}

		if expectedVersion != nil && *expectedVersion != current.Version {
			return fmt.Errorf("alert %s: expected version %d, current %d: %w",
				alertID, *expectedVersion, current.Version, domain.ErrConflict)
		}

		from = current.Status
		if err := check(from); err != nil {
			return err
		}

		version := current.Version
		current.ApplyStatus(to, now)

		updated, err = s.alerts.UpdateStatus(txCtx, current, version)
		if err != nil {
			return fmt.Errorf("update alert status: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     ctxutil.ActorFromCtx(ctx),
			EntityType: domain.EntityTypeAlert,
			EntityID:   alertID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"status":  map[string]any{"old": string(from), "new": string(to)},
				"version": updated.Version,
			},
			CreatedAt: now,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AlertTransitioned(from, to)
	s.publish(ctx, domain.NewAlertEvent(domain.AlertEventStatusChanged, updated, now))

	s.log.InfoContext(ctx, "alert status changed",
		slog.String("alert_id", alertID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.Int("version", updated.Version),
	)

	return updated, nil
}
