// Package alert implements the Alert repository using PostgreSQL.
// Lists are built with squirrel so optional filters compose with AND.
package alert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// Repo provides alert persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new alert repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const alertColumns = `id, camera_id, store_id, type, severity, status, detections, version, created_at, updated_at, resolved_at`

// store_id is copied from the camera row in the same statement; an unknown
// camera yields no row. INSERT ... SELECT does not infer parameter types from
// the target columns, hence the casts.
const createSQL = `
INSERT INTO alerts (id, camera_id, store_id, type, severity, status, detections, version, created_at, updated_at)
SELECT $1::uuid, c.id, c.store_id, $3::alert_type, $4::alert_severity, 'NEW', $5::jsonb, 1, $6::timestamptz, $6::timestamptz
FROM cameras c
WHERE c.id = $2
RETURNING ` + alertColumns

const updateStatusSQL = `
UPDATE alerts
SET status = $3, resolved_at = $4, version = version + 1, updated_at = $5
WHERE id = $1 AND version = $2
RETURNING ` + alertColumns

var joinedColumns = []string{
	"a.id", "a.camera_id", "a.store_id", "a.type", "a.severity", "a.status", "a.detections",
	"a.version", "a.created_at", "a.updated_at", "a.resolved_at",
	"c.name", "s.name",
}

// Create inserts a NEW alert for the given camera. StoreID, Status, Version
// and timestamps are assigned by the insert; the passed values are ignored.
// Returns domain.ErrNotFound if the camera does not exist.
func (r *Repo) Create(ctx context.Context, a *domain.Alert) (*domain.Alert, error) {
	detections, err := json.Marshal(a.Detections)
	if err != nil {
		return nil, fmt.Errorf("alert marshal detections: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		a.ID, a.CameraID, string(a.Type), string(a.Severity), detections, a.CreatedAt,
	)

	created, err := scanAlert(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, postgres.MapError(err, "camera", a.CameraID)
		}
		return nil, postgres.MapError(err, "alert", a.ID)
	}
	return created, nil
}

// GetByID returns an alert joined with camera and store names.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	return r.getOne(ctx, id, "")
}

// GetForUpdate is GetByID with a row lock on the alert; it must run inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	return r.getOne(ctx, id, "FOR UPDATE OF a")
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, suffix string) (*domain.Alert, error) {
	b := joinedQuery().Where(sq.Eq{"a.id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get alert query: %w", err)
	}

	a, err := scanJoined(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "alert", id)
	}
	return a, nil
}

// UpdateStatus persists a.Status and a.ResolvedAt if the stored version still
// equals expectedVersion, bumping the version. A version mismatch is reported
// as domain.ErrConflict.
func (r *Repo) UpdateStatus(ctx context.Context, a *domain.Alert, expectedVersion int) (*domain.Alert, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateStatusSQL,
		a.ID, expectedVersion, string(a.Status), a.ResolvedAt, a.UpdatedAt,
	)

	updated, err := scanAlert(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert %s version %d: %w", a.ID, expectedVersion, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "alert", a.ID)
	}

	updated.CameraName = a.CameraName
	updated.StoreName = a.StoreName
	return updated, nil
}

// List returns alerts matching every set field of the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.AlertFilter) ([]domain.Alert, error) {
	b := applyFilter(joinedQuery(), f).
		OrderBy("a.created_at DESC", "a.id DESC")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list alerts query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Alert, 0)
	for rows.Next() {
		a, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}

	return result, nil
}

// Count returns the number of alerts matching the filter, ignoring Limit and Offset.
func (r *Repo) Count(ctx context.Context, f domain.AlertFilter) (int, error) {
	b := applyFilter(postgres.Builder().Select("count(*)").From("alerts a"), f)

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count alerts query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count alerts: %w", err)
	}
	return n, nil
}

func applyFilter(b sq.SelectBuilder, f domain.AlertFilter) sq.SelectBuilder {
	if f.Status != nil {
		b = b.Where(sq.Eq{"a.status": string(*f.Status)})
	}
	if f.Severity != nil {
		b = b.Where(sq.Eq{"a.severity": string(*f.Severity)})
	}
	if f.StoreID != nil {
		b = b.Where(sq.Eq{"a.store_id": *f.StoreID})
	}
	if f.CameraID != nil {
		b = b.Where(sq.Eq{"a.camera_id": *f.CameraID})
	}
	return b
}

func joinedQuery() sq.SelectBuilder {
	return postgres.Builder().
		Select(joinedColumns...).
		From("alerts a").
		Join("cameras c ON c.id = a.camera_id").
		Join("stores s ON s.id = a.store_id")
}

// scanTarget lists the destinations of alertColumns in order.
type scanTarget struct {
	alert      domain.Alert
	typ        string
	severity   string
	status     string
	detections []byte
}

func (t *scanTarget) dest() []any {
	return []any{
		&t.alert.ID, &t.alert.CameraID, &t.alert.StoreID, &t.typ, &t.severity, &t.status, &t.detections,
		&t.alert.Version, &t.alert.CreatedAt, &t.alert.UpdatedAt, &t.alert.ResolvedAt,
	}
}

func (t *scanTarget) finish() (*domain.Alert, error) {
	a := t.alert
	a.Type = domain.AlertType(t.typ)
	a.Severity = domain.Severity(t.severity)
	a.Status = domain.AlertStatus(t.status)

	if err := json.Unmarshal(t.detections, &a.Detections); err != nil {
		return nil, fmt.Errorf("alert %s unmarshal detections: %w", a.ID, err)
	}
	if a.Detections == nil {
		a.Detections = []domain.Detection{}
	}
	return &a, nil
}

func scanAlert(row pgx.Row) (*domain.Alert, error) {
	var t scanTarget
	if err := row.Scan(t.dest()...); err != nil {
		return nil, err
	}
	return t.finish()
}

func scanJoined(row pgx.Row) (*domain.Alert, error) {
	var t scanTarget
	dest := append(t.dest(), &t.alert.CameraName, &t.alert.StoreName)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return t.finish()
}
