// Package camera implements the Camera repository using PostgreSQL.
package camera

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// Repo provides camera persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new camera repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO cameras (id, store_id, name, location, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, store_id, name, location, is_active, created_at`

const setActiveSQL = `
UPDATE cameras SET is_active = $2
WHERE id = $1
RETURNING id, store_id, name, location, is_active, created_at`

// Create inserts a camera. Returns domain.ErrNotFound if the store does not exist.
func (r *Repo) Create(ctx context.Context, c *domain.Camera) (*domain.Camera, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		c.ID, c.StoreID, c.Name, c.Location, c.IsActive, c.CreatedAt,
	)

	created, err := scanCamera(row)
	if err != nil {
		return nil, postgres.MapError(err, "camera", c.ID)
	}
	return created, nil
}

// GetByID returns a camera joined with its store name.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Camera, error) {
	query, args, err := joinedQuery().Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get camera query: %w", err)
	}

	c, err := scanJoined(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "camera", id)
	}
	return c, nil
}

// List returns cameras joined with their store name, ordered by store then name.
// A non-nil storeID restricts the result to that store.
func (r *Repo) List(ctx context.Context, storeID *uuid.UUID) ([]domain.Camera, error) {
	b := joinedQuery().OrderBy("s.name", "c.name", "c.id")
	if storeID != nil {
		b = b.Where(sq.Eq{"c.store_id": *storeID})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cameras query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cameras: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Camera, 0)
	for rows.Next() {
		c, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("scan camera: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cameras: %w", err)
	}

	return result, nil
}

// SetActive updates the online flag of a camera and returns the updated row.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, isActive bool) (*domain.Camera, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setActiveSQL, id, isActive)

	c, err := scanCamera(row)
	if err != nil {
		return nil, postgres.MapError(err, "camera", id)
	}
	return c, nil
}

func joinedQuery() sq.SelectBuilder {
	return postgres.Builder().
		Select("c.id", "c.store_id", "c.name", "c.location", "c.is_active", "c.created_at", "s.name").
		From("cameras c").
		Join("stores s ON s.id = c.store_id")
}

func scanCamera(row pgx.Row) (*domain.Camera, error) {
	var c domain.Camera
	if err := row.Scan(&c.ID, &c.StoreID, &c.Name, &c.Location, &c.IsActive, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanJoined(row pgx.Row) (*domain.Camera, error) {
	var c domain.Camera
	if err := row.Scan(&c.ID, &c.StoreID, &c.Name, &c.Location, &c.IsActive, &c.CreatedAt, &c.StoreName); err != nil {
		return nil, err
	}
	return &c, nil
}
