package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pet is a memorial page for a deceased pet.
type Pet struct {
	ID          uuid.UUID
	OwnerID     string
	Name        string
	Species     string
	Epitaph     *string
	BornOn      *time.Time
	DiedOn      *time.Time
	Location    *GeoPoint
	Environment Environment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID owns the memorial.
func (p *Pet) IsOwnedBy(userID string) bool {
	return p.OwnerID == userID
}

// GeoPoint is a map marker position in degrees.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// BoundingBox restricts a map query to a rectangle in degrees.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// PetUpdateParams holds optional fields for a partial memorial update.
// nil means "leave unchanged".
type PetUpdateParams struct {
	Name        *string
	Species     *string
	Epitaph     *string
	Location    *GeoPoint
	Environment *Environment
}

// PetPhoto is an uploaded picture attached to a memorial. Only the URL is
// stored here; the bytes live in external storage.
type PetPhoto struct {
	ID        uuid.UUID
	PetID     uuid.UUID
	URL       string
	Caption   *string
	CreatedAt time.Time
}

// PetFilter defines parameters for listing memorials.
type PetFilter struct {
	// OwnerID restricts results to one owner's pets. nil means all owners.
	OwnerID *string

	// Bounds restricts results to pets located inside the box.
	// Pets without a location are excluded when Bounds is set.
	Bounds *BoundingBox

	// Limit is the maximum number of pets to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of pets to skip.
	Offset int
}
