package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gift is a catalog item that can be placed into a memorial slot.
type Gift struct {
	ID        uuid.UUID
	Code      string
	Name      string
	Price     int64
	ModelURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GiftPlacement is a gift instance attached to a pet's decoration slot.
// Rows are never updated or deleted; expiry is evaluated at query time.
type GiftPlacement struct {
	ID        uuid.UUID
	PetID     uuid.UUID
	GiftID    uuid.UUID
	OwnerID   string
	SlotName  string
	Size      *string
	PlacedAt  time.Time
	ExpiresAt *time.Time // nil = permanent
}

// IsActive reports whether the placement occupies its slot at now.
func (p *GiftPlacement) IsActive(now time.Time) bool {
	return p.ExpiresAt == nil || p.ExpiresAt.After(now)
}

// PlacementView is a placement joined with its gift and owner for display.
type PlacementView struct {
	GiftPlacement
	Gift  Gift
	Owner User
}

// PlacementExpiry returns the expiry for a placement made at now lasting
// months calendar months. Zero months means permanent (nil).
//
// Month arithmetic follows time.AddDate: a day that does not exist in the
// target month rolls over into the next one (Jan 31 + 1 month = Mar 3).
func PlacementExpiry(now time.Time, months int) *time.Time {
	if months <= 0 {
		return nil
	}
	exp := now.AddDate(0, months, 0)
	return &exp
}

// PlacementCost returns price * months. A permanent placement (months == 0)
// costs nothing; negative months are clamped to zero.
func PlacementCost(price int64, months int) int64 {
	if months <= 0 {
		return 0
	}
	return price * int64(months)
}
