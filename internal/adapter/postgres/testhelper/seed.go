package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an owner with the given coin balance.
func SeedUser(t *testing.T, pool *pgxpool.Pool, balance int64) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          "owner-" + suffix,
		Email:       "owner-" + suffix + "@example.com",
		Role:        domain.UserRoleUser,
		CoinBalance: balance,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, role, coin_balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, string(user.Role), user.CoinBalance, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedPet creates a memorial owned by ownerID with a fixed location.
func SeedPet(t *testing.T, pool *pgxpool.Pool, ownerID string) domain.Pet {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	pet := domain.Pet{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "Biscuit " + uniqueSuffix(),
		Species:     "dog",
		Location:    &domain.GeoPoint{Latitude: 52.37, Longitude: 4.89},
		Environment: domain.EnvironmentMeadow,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO pets (id, owner_id, name, species, latitude, longitude, environment, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		pet.ID, pet.OwnerID, pet.Name, pet.Species,
		pet.Location.Latitude, pet.Location.Longitude,
		string(pet.Environment), pet.CreatedAt, pet.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPet: %v", err)
	}

	return pet
}

// SeedGift creates a catalog entry with the given price.
func SeedGift(t *testing.T, pool *pgxpool.Pool, price int64) domain.Gift {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	gift := domain.Gift{
		ID:        uuid.New(),
		Code:      "candle-" + suffix,
		Name:      "Candle " + suffix,
		Price:     price,
		ModelURL:  "https://cdn.example.com/models/candle.glb",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO gift_catalog (id, code, name, price, model_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		gift.ID, gift.Code, gift.Name, gift.Price, gift.ModelURL, gift.CreatedAt, gift.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGift: %v", err)
	}

	return gift
}

// SeedPlacement inserts a placement directly, bypassing the debit.
// A nil expiresAt creates a permanent placement.
func SeedPlacement(t *testing.T, pool *pgxpool.Pool, petID, giftID uuid.UUID, ownerID, slot string, placedAt time.Time, expiresAt *time.Time) domain.GiftPlacement {
	t.Helper()

	p := domain.GiftPlacement{
		ID:        uuid.New(),
		PetID:     petID,
		GiftID:    giftID,
		OwnerID:   ownerID,
		SlotName:  slot,
		PlacedAt:  placedAt.UTC().Truncate(time.Microsecond),
		ExpiresAt: expiresAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO gift_placements (id, pet_id, gift_id, owner_id, slot_name, placed_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.PetID, p.GiftID, p.OwnerID, p.SlotName, p.PlacedAt, p.ExpiresAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlacement: %v", err)
	}

	return p
}

// Balance reads a user's current coin balance.
func Balance(t *testing.T, pool *pgxpool.Pool, userID string) int64 {
	t.Helper()

	var balance int64
	err := pool.QueryRow(context.Background(),
		`SELECT coin_balance FROM users WHERE id = $1`, userID,
	).Scan(&balance)
	if err != nil {
		t.Fatalf("testhelper: Balance: %v", err)
	}
	return balance
}

// CountPlacements returns how many placements exist for (petID, slot), active or not.
func CountPlacements(t *testing.T, pool *pgxpool.Pool, petID uuid.UUID, slot string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM gift_placements WHERE pet_id = $1 AND slot_name = $2`, petID, slot,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountPlacements: %v", err)
	}
	return n
}
