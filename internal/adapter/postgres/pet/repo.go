// Package pet implements the memorial (pet) repository using PostgreSQL.
package pet

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/pet/sqlc"
	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// Repo provides pet persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Dynamic SQL
// ---------------------------------------------------------------------------

// Static statements live in queries.sql; List and Update build theirs with
// squirrel because their WHERE and SET clauses depend on the input.
var petColumns = []string{
	"id", "owner_id", "name", "species", "epitaph", "born_on", "died_on",
	"latitude", "longitude", "environment", "created_at", "updated_at",
}

const returningColumns = `id, owner_id, name, species, epitaph, born_on, died_on,
    latitude, longitude, environment, created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a pet by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetPetByID(ctx, id)
	if err != nil {
		return nil, postgres.MapError(err, "pet", id)
	}

	p := toDomainPet(row)
	return &p, nil
}

// LockByID returns a pet and holds a row lock on it until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("pet %s: lock requires a transaction", id)
	}

	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.LockPetByID(ctx, id)
	if err != nil {
		return nil, postgres.MapError(err, "pet", id)
	}

	p := toDomainPet(row)
	return &p, nil
}

// List returns pets matching the filter ordered by creation time (newest
// first) and the total number of matches ignoring limit/offset.
func (r *Repo) List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, int, error) {
	filter = normalize(filter)

	where := sq.And{}
	if filter.OwnerID != nil {
		where = append(where, sq.Eq{"owner_id": *filter.OwnerID})
	}
	if b := filter.Bounds; b != nil {
		where = append(where,
			sq.GtOrEq{"latitude": b.MinLat},
			sq.LtOrEq{"latitude": b.MaxLat},
			sq.GtOrEq{"longitude": b.MinLng},
			sq.LtOrEq{"longitude": b.MaxLng},
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From("pets").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count pets: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pets: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(petColumns...).
		From("pets").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list pets: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	pets := make([]domain.Pet, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan pet: %w", err)
		}
		pets = append(pets, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list pets: %w", err)
	}

	return pets, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new pet and returns the persisted row.
// Returns domain.ErrNotFound if the owner does not exist.
func (r *Repo) Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	lat, lng := splitLocation(p.Location)
	row, err := q.CreatePet(ctx, sqlc.CreatePetParams{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Species:     p.Species,
		Epitaph:     p.Epitaph,
		BornOn:      p.BornOn,
		DiedOn:      p.DiedOn,
		Latitude:    lat,
		Longitude:   lng,
		Environment: string(p.Environment),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	})
	if err != nil {
		return nil, postgres.MapError(err, "pet", p.ID)
	}

	created := toDomainPet(row)
	return &created, nil
}

// Update applies the non-nil fields of params and returns the updated row.
// An empty Epitaph clears it.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.PetUpdateParams, now time.Time) (*domain.Pet, error) {
	b := postgres.Builder().
		Update("pets").
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + returningColumns)

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Species != nil {
		b = b.Set("species", *params.Species)
	}
	if params.Epitaph != nil {
		if *params.Epitaph == "" {
			b = b.Set("epitaph", nil)
		} else {
			b = b.Set("epitaph", *params.Epitaph)
		}
	}
	if params.Location != nil {
		b = b.Set("latitude", params.Location.Latitude).Set("longitude", params.Location.Longitude)
	}
	if params.Environment != nil {
		b = b.Set("environment", string(*params.Environment))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update pet: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPet(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "pet", id)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// scanPet reads a row produced by the squirrel statements into the sqlc
// model, so both paths share toDomainPet.
func scanPet(row pgx.Row) (*domain.Pet, error) {
	var r sqlc.Pet
	if err := row.Scan(
		&r.ID, &r.OwnerID, &r.Name, &r.Species, &r.Epitaph, &r.BornOn, &r.DiedOn,
		&r.Latitude, &r.Longitude, &r.Environment, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p := toDomainPet(r)
	return &p, nil
}

func toDomainPet(row sqlc.Pet) domain.Pet {
	p := domain.Pet{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Species:     row.Species,
		Epitaph:     row.Epitaph,
		BornOn:      row.BornOn,
		DiedOn:      row.DiedOn,
		Environment: domain.Environment(row.Environment),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Latitude != nil && row.Longitude != nil {
		p.Location = &domain.GeoPoint{Latitude: *row.Latitude, Longitude: *row.Longitude}
	}
	return p
}

func splitLocation(loc *domain.GeoPoint) (*float64, *float64) {
	if loc == nil {
		return nil, nil
	}
	lat, lng := loc.Latitude, loc.Longitude
	return &lat, &lng
}
