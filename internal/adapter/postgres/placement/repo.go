// Package placement implements the gift placement repository using PostgreSQL.
// Placements are append-only: a slot frees up when its placement expires, and
// expired rows stay as history.
package placement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/placement/sqlc"
	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// Repo provides gift placement persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new placement repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// HasActive reports whether (petID, slot) holds a placement that is active at now.
func (r *Repo) HasActive(ctx context.Context, petID uuid.UUID, slot string, now time.Time) (bool, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	exists, err := q.HasActivePlacement(ctx, sqlc.HasActivePlacementParams{
		PetID:    petID,
		SlotName: slot,
		Now:      now,
	})
	if err != nil {
		return false, fmt.Errorf("check active placement: %w", err)
	}
	return exists, nil
}

// GetView returns a placement joined with its gift and owner.
func (r *Repo) GetView(ctx context.Context, id uuid.UUID) (*domain.PlacementView, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetPlacementView(ctx, id)
	if err != nil {
		return nil, postgres.MapError(err, "gift_placement", id)
	}

	v := toDomainView(row.GiftPlacement, row.GiftCatalog, row.User)
	return &v, nil
}

// ListActiveByPet returns the placements shown on a memorial at now,
// ordered by slot. Returns an empty slice (not nil) when nothing is placed.
func (r *Repo) ListActiveByPet(ctx context.Context, petID uuid.UUID, now time.Time) ([]domain.PlacementView, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	rows, err := q.ListActivePlacementsByPet(ctx, sqlc.ListActivePlacementsByPetParams{PetID: petID, Now: now})
	if err != nil {
		return nil, fmt.Errorf("list active placements: %w", err)
	}

	views := make([]domain.PlacementView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toDomainView(row.GiftPlacement, row.GiftCatalog, row.User))
	}
	return views, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a placement.
// Returns domain.ErrSlotOccupied when the exclusion constraint rejects an
// overlapping placement on the same (pet, slot).
func (r *Repo) Create(ctx context.Context, p *domain.GiftPlacement) (*domain.GiftPlacement, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.CreatePlacement(ctx, sqlc.CreatePlacementParams{
		ID:        p.ID,
		PetID:     p.PetID,
		GiftID:    p.GiftID,
		OwnerID:   p.OwnerID,
		SlotName:  p.SlotName,
		Size:      p.Size,
		PlacedAt:  p.PlacedAt,
		ExpiresAt: p.ExpiresAt,
	})
	if err != nil {
		mapped := postgres.MapError(err, "gift_placement", p.ID)
		if errors.Is(mapped, domain.ErrConflict) {
			return nil, fmt.Errorf("gift_placement %s: %w", p.ID, domain.ErrSlotOccupied)
		}
		return nil, mapped
	}

	out := toDomainPlacement(row)
	return &out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainPlacement(row sqlc.GiftPlacement) domain.GiftPlacement {
	return domain.GiftPlacement{
		ID:        row.ID,
		PetID:     row.PetID,
		GiftID:    row.GiftID,
		OwnerID:   row.OwnerID,
		SlotName:  row.SlotName,
		Size:      row.Size,
		PlacedAt:  row.PlacedAt,
		ExpiresAt: row.ExpiresAt,
	}
}

// toDomainView never carries the owner's password hash.
func toDomainView(p sqlc.GiftPlacement, g sqlc.GiftCatalog, u sqlc.User) domain.PlacementView {
	return domain.PlacementView{
		GiftPlacement: toDomainPlacement(p),
		Gift: domain.Gift{
			ID:        g.ID,
			Code:      g.Code,
			Name:      g.Name,
			Price:     g.Price,
			ModelURL:  g.ModelURL,
			CreatedAt: g.CreatedAt,
			UpdatedAt: g.UpdatedAt,
		},
		Owner: domain.User{
			ID:          u.ID,
			Email:       u.Email,
			Username:    u.Username,
			Role:        domain.UserRole(u.Role),
			CoinBalance: u.CoinBalance,
			CreatedAt:   u.CreatedAt,
			UpdatedAt:   u.UpdatedAt,
		},
	}
}
