// Package catalog implements the gift catalog repository using PostgreSQL.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/catalog/sqlc"
	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// Repo provides gift catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the whole catalog ordered by price, cheapest first, then name.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context) ([]domain.Gift, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	rows, err := q.ListGifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gift_catalog: %w", err)
	}

	gifts := make([]domain.Gift, 0, len(rows))
	for _, row := range rows {
		gifts = append(gifts, toDomainGift(row))
	}
	return gifts, nil
}

// GetByID returns a catalog entry by primary key. Inside a transaction this
// reads the current price, never a cached one.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Gift, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetGiftByID(ctx, id)
	if err != nil {
		return nil, postgres.MapError(err, "gift", id)
	}

	g := toDomainGift(row)
	return &g, nil
}

// GetByCode returns a catalog entry by its stable code.
func (r *Repo) GetByCode(ctx context.Context, code string) (*domain.Gift, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetGiftByCode(ctx, code)
	if err != nil {
		return nil, postgres.MapError(err, "gift", code)
	}

	g := toDomainGift(row)
	return &g, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts a gift or updates the existing entry with the same code.
// The id of an existing entry is kept. Reports whether a new row was inserted.
func (r *Repo) Upsert(ctx context.Context, g *domain.Gift) (*domain.Gift, bool, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.UpsertGift(ctx, sqlc.UpsertGiftParams{
		ID:       g.ID,
		Code:     g.Code,
		Name:     g.Name,
		Price:    g.Price,
		ModelURL: g.ModelURL,
		Now:      g.UpdatedAt,
	})
	if err != nil {
		return nil, false, postgres.MapError(err, "gift", g.Code)
	}

	out := domain.Gift{
		ID:        row.ID,
		Code:      row.Code,
		Name:      row.Name,
		Price:     row.Price,
		ModelURL:  row.ModelURL,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	return &out, row.Inserted, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainGift(row sqlc.GiftCatalog) domain.Gift {
	return domain.Gift{
		ID:        row.ID,
		Code:      row.Code,
		Name:      row.Name,
		Price:     row.Price,
		ModelURL:  row.ModelURL,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
