// Package photo implements the memorial photo repository using PostgreSQL.
// Only metadata is stored; the image bytes live in external storage.
package photo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/photo/sqlc"
	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// Repo provides photo persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new photo repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a photo record.
// Returns domain.ErrNotFound if the pet does not exist.
func (r *Repo) Create(ctx context.Context, p *domain.PetPhoto) (*domain.PetPhoto, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.CreatePetPhoto(ctx, sqlc.CreatePetPhotoParams{
		ID:        p.ID,
		PetID:     p.PetID,
		URL:       p.URL,
		Caption:   p.Caption,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		return nil, postgres.MapError(err, "pet_photo", p.ID)
	}

	created := toDomainPhoto(row)
	return &created, nil
}

// ListByPet returns a memorial's photos, oldest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.PetPhoto, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	rows, err := q.ListPetPhotosByPet(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("list pet_photos: %w", err)
	}

	photos := make([]domain.PetPhoto, 0, len(rows))
	for _, row := range rows {
		photos = append(photos, toDomainPhoto(row))
	}
	return photos, nil
}

// CountByPet returns the number of photos attached to a memorial.
func (r *Repo) CountByPet(ctx context.Context, petID uuid.UUID) (int, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	n, err := q.CountPetPhotosByPet(ctx, petID)
	if err != nil {
		return 0, fmt.Errorf("count pet_photos: %w", err)
	}
	return int(n), nil
}

func toDomainPhoto(row sqlc.PetPhoto) domain.PetPhoto {
	return domain.PetPhoto{
		ID:        row.ID,
		PetID:     row.PetID,
		URL:       row.URL,
		Caption:   row.Caption,
		CreatedAt: row.CreatedAt,
	}
}
