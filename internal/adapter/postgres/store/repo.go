// Package store implements the Store repository using PostgreSQL.
package store

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

// Repo provides store persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new store repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const ownerFK = "stores_owner_id_fkey"

const createSQL = `
INSERT INTO stores (id, name, address, owner_id, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, address, owner_id, created_at`

const deleteSQL = `DELETE FROM stores WHERE id = $1`

// summaryColumns select a store with its owner and aggregate counts.
var summaryColumns = []string{
	"s.id", "s.name", "s.address", "s.owner_id", "s.created_at",
	"u.name", "u.email",
	"(SELECT count(*) FROM cameras c WHERE c.store_id = s.id)",
	"(SELECT count(*) FROM alerts a WHERE a.store_id = s.id)",
}

// Create inserts a store. Returns domain.ErrUnauthorized if the owner does not
// exist, since the owner is always the authenticated caller.
func (r *Repo) Create(ctx context.Context, s *domain.Store) (*domain.Store, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		s.ID, s.Name, s.Address, s.OwnerID, s.CreatedAt,
	)

	var created domain.Store
	if err := row.Scan(&created.ID, &created.Name, &created.Address, &created.OwnerID, &created.CreatedAt); err != nil {
		if postgres.IsForeignKeyViolation(err, ownerFK) {
			return nil, fmt.Errorf("store %s: unknown owner %s: %w", s.ID, s.OwnerID, domain.ErrUnauthorized)
		}
		return nil, postgres.MapError(err, "store", s.ID)
	}
	return &created, nil
}

// GetSummary returns one store with owner and counts.
func (r *Repo) GetSummary(ctx context.Context, id uuid.UUID) (*domain.StoreSummary, error) {
	query, args, err := summaryQuery().Where(sq.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build store summary query: %w", err)
	}

	summary, err := scanSummary(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "store", id)
	}
	return summary, nil
}

// ListSummaries returns stores ordered by creation time, newest first.
// A non-nil ownerID restricts the list to that owner's stores.
// Returns an empty slice (not nil) when there are no stores.
func (r *Repo) ListSummaries(ctx context.Context, ownerID *uuid.UUID) ([]domain.StoreSummary, error) {
	b := summaryQuery().OrderBy("s.created_at DESC", "s.id DESC")
	if ownerID != nil {
		b = b.Where(sq.Eq{"s.owner_id": *ownerID})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list stores query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	result := make([]domain.StoreSummary, 0)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	return result, nil
}

// Delete removes a store. Returns domain.ErrNotFound if it does not exist and
// domain.ErrConflict while cameras still reference it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "store", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "store", id)
	}
	return nil
}

func summaryQuery() sq.SelectBuilder {
	return postgres.Builder().
		Select(summaryColumns...).
		From("stores s").
		Join("users u ON u.id = s.owner_id")
}

func scanSummary(row pgx.Row) (*domain.StoreSummary, error) {
	var s domain.StoreSummary
	err := row.Scan(
		&s.ID, &s.Name, &s.Address, &s.OwnerID, &s.CreatedAt,
		&s.OwnerName, &s.OwnerEmail,
		&s.CameraCount, &s.AlertCount,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
