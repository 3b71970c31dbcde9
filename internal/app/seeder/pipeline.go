package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/auth"
	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// allPhases defines the canonical execution order. Each phase depends on
// the ids resolved by the previous one.
var allPhases = []string{"owner", "store", "cameras", "alerts"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
}

// Pipeline seeds the demo tenant. Every phase looks up existing rows first,
// so running it twice leaves the database unchanged.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	cfg     Config
	now     func() time.Time
	results map[string]PhaseResult

	ownerID   uuid.UUID
	storeID   uuid.UUID
	cameraIDs map[string]uuid.UUID
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repos Repos, cfg Config) *Pipeline {
	return &Pipeline{
		log:       log,
		repos:     repos,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		results:   make(map[string]PhaseResult),
		cameraIDs: make(map[string]uuid.UUID),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Run executes all phases in a single transaction. In dry-run mode nothing
// is read or written and every fixture is reported as skipped.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.cfg.DryRun {
		p.results["owner"] = PhaseResult{Skipped: 1}
		p.results["store"] = PhaseResult{Skipped: 1}
		p.results["cameras"] = PhaseResult{Skipped: len(demoCameras)}
		p.results["alerts"] = PhaseResult{Skipped: len(demoAlerts)}
		p.log.Info("dry run, nothing written")
		return nil
	}

	err := p.repos.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, phase := range allPhases {
			start := time.Now()
			p.log.Info("starting phase", slog.String("phase", phase))

			var (
				result PhaseResult
				err    error
			)
			switch phase {
			case "owner":
				result, err = p.seedOwner(txCtx)
			case "store":
				result, err = p.seedStore(txCtx)
			case "cameras":
				result, err = p.seedCameras(txCtx)
			case "alerts":
				result, err = p.seedAlerts(txCtx)
			}
			if err != nil {
				return fmt.Errorf("phase %s: %w", phase, err)
			}

			result.Duration = time.Since(start)
			p.results[phase] = result

			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(allPhases)))
	return nil
}

func (p *Pipeline) seedOwner(ctx context.Context) (PhaseResult, error) {
	existing, err := p.repos.Users.GetByEmail(ctx, p.cfg.OwnerEmail)
	if err == nil {
		p.ownerID = existing.ID
		return PhaseResult{Skipped: 1}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return PhaseResult{}, fmt.Errorf("get owner: %w", err)
	}

	hash, err := auth.HashPassword(p.cfg.OwnerPassword, p.cfg.PasswordCost)
	if err != nil {
		return PhaseResult{}, err
	}

	created, err := p.repos.Users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Name:         p.cfg.OwnerName,
		Email:        p.cfg.OwnerEmail,
		PasswordHash: hash,
		Role:         domain.UserRoleOwner,
		CreatedAt:    p.now(),
	})
	if err != nil {
		return PhaseResult{}, fmt.Errorf("create owner: %w", err)
	}

	p.ownerID = created.ID
	return PhaseResult{Inserted: 1}, nil
}

func (p *Pipeline) seedStore(ctx context.Context) (PhaseResult, error) {
	stores, err := p.repos.Stores.ListSummaries(ctx, &p.ownerID)
	if err != nil {
		return PhaseResult{}, fmt.Errorf("list stores: %w", err)
	}
	for _, s := range stores {
		if s.Name == p.cfg.StoreName {
			p.storeID = s.ID
			return PhaseResult{Skipped: 1}, nil
		}
	}

	created, err := p.repos.Stores.Create(ctx, &domain.Store{
		ID:        uuid.New(),
		Name:      p.cfg.StoreName,
		Address:   p.cfg.StoreAddress,
		OwnerID:   p.ownerID,
		CreatedAt: p.now(),
	})
	if err != nil {
		return PhaseResult{}, fmt.Errorf("create store: %w", err)
	}

	p.storeID = created.ID
	return PhaseResult{Inserted: 1}, nil
}

func (p *Pipeline) seedCameras(ctx context.Context) (PhaseResult, error) {
	existing, err := p.repos.Cameras.List(ctx, &p.storeID)
	if err != nil {
		return PhaseResult{}, fmt.Errorf("list cameras: %w", err)
	}
	for _, c := range existing {
		p.cameraIDs[c.Name] = c.ID
	}

	var result PhaseResult
	for _, dc := range demoCameras {
		if _, ok := p.cameraIDs[dc.Name]; ok {
			result.Skipped++
			continue
		}

		created, err := p.repos.Cameras.Create(ctx, &domain.Camera{
			ID:        uuid.New(),
			StoreID:   p.storeID,
			Name:      dc.Name,
			Location:  dc.Location,
			IsActive:  true,
			CreatedAt: p.now(),
		})
		if err != nil {
			return PhaseResult{}, fmt.Errorf("create camera %q: %w", dc.Name, err)
		}
		p.cameraIDs[dc.Name] = created.ID
		result.Inserted++
	}
	return result, nil
}

// seedAlerts only runs against a store without alerts; alerts have no
// natural key to match fixtures against.
func (p *Pipeline) seedAlerts(ctx context.Context) (PhaseResult, error) {
	count, err := p.repos.Alerts.Count(ctx, domain.AlertFilter{StoreID: &p.storeID})
	if err != nil {
		return PhaseResult{}, fmt.Errorf("count alerts: %w", err)
	}
	if count > 0 {
		return PhaseResult{Skipped: len(demoAlerts)}, nil
	}

	now := p.now()
	var result PhaseResult
	for i, da := range demoAlerts {
		cameraID, ok := p.cameraIDs[da.Camera]
		if !ok {
			return PhaseResult{}, fmt.Errorf("alert %d: camera %q not seeded", i, da.Camera)
		}

		created, err := p.repos.Alerts.Create(ctx, &domain.Alert{
			ID:         uuid.New(),
			CameraID:   cameraID,
			Type:       da.Type,
			Severity:   da.Severity,
			Detections: []domain.Detection{da.Detection},
			CreatedAt:  now.Add(-da.Age),
		})
		if err != nil {
			return PhaseResult{}, fmt.Errorf("create alert %d: %w", i, err)
		}

		if da.Status != domain.AlertStatusNew {
			if err := domain.CheckTransition(created.Status, da.Status); err != nil {
				return PhaseResult{}, fmt.Errorf("alert %d: %w", i, err)
			}
			version := created.Version
			created.ApplyStatus(da.Status, now.Add(-da.Age/2))
			if _, err := p.repos.Alerts.UpdateStatus(ctx, created, version); err != nil {
				return PhaseResult{}, fmt.Errorf("update alert %d: %w", i, err)
			}
		}
		result.Inserted++
	}
	return result, nil
}
