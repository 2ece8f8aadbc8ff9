package pet

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

const (
	maxNameLength    = 100
	maxSpeciesLength = 50
	maxEpitaphLength = 500
	maxURLLength     = 2048
	maxCaptionLength = 300
)

// CreateInput holds parameters for creating a memorial.
type CreateInput struct {
	Name        string
	Species     string
	Epitaph     *string
	BornOn      *time.Time
	DiedOn      *time.Time
	Latitude    *float64
	Longitude   *float64
	Environment domain.Environment
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = appendText(errs, "name", i.Name, maxNameLength)
	errs = appendText(errs, "species", i.Species, maxSpeciesLength)

	if i.Epitaph != nil && utf8.RuneCountInString(*i.Epitaph) > maxEpitaphLength {
		errs = append(errs, domain.FieldError{Field: "epitaph", Message: "too long"})
	}

	if i.BornOn != nil && i.DiedOn != nil && i.DiedOn.Before(*i.BornOn) {
		errs = append(errs, domain.FieldError{Field: "diedOn", Message: "must not be before bornOn"})
	}

	errs = appendLocation(errs, i.Latitude, i.Longitude)

	if !i.Environment.IsValid() {
		errs = append(errs, domain.FieldError{Field: "environment", Message: "unknown environment"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a partial memorial update.
// nil fields are left unchanged; an empty Epitaph clears it.
type UpdateInput struct {
	PetID       uuid.UUID
	Name        *string
	Species     *string
	Epitaph     *string
	Latitude    *float64
	Longitude   *float64
	Environment *domain.Environment
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		errs = appendText(errs, "name", *i.Name, maxNameLength)
	}
	if i.Species != nil {
		errs = appendText(errs, "species", *i.Species, maxSpeciesLength)
	}
	if i.Epitaph != nil && utf8.RuneCountInString(*i.Epitaph) > maxEpitaphLength {
		errs = append(errs, domain.FieldError{Field: "epitaph", Message: "too long"})
	}
	errs = appendLocation(errs, i.Latitude, i.Longitude)
	if i.Environment != nil && !i.Environment.IsValid() {
		errs = append(errs, domain.FieldError{Field: "environment", Message: "unknown environment"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) params() domain.PetUpdateParams {
	p := domain.PetUpdateParams{
		Name:        i.Name,
		Species:     i.Species,
		Epitaph:     i.Epitaph,
		Environment: i.Environment,
	}
	if i.Latitude != nil && i.Longitude != nil {
		p.Location = &domain.GeoPoint{Latitude: *i.Latitude, Longitude: *i.Longitude}
	}
	return p
}

// ListInput holds parameters for listing memorials.
type ListInput struct {
	OwnerID *string
	Bounds  *domain.BoundingBox
	Limit   int
	Offset  int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if b := i.Bounds; b != nil {
		if b.MinLat < -90 || b.MaxLat > 90 || b.MinLat > b.MaxLat {
			errs = append(errs, domain.FieldError{Field: "bounds", Message: "invalid latitude range"})
		}
		if b.MinLng < -180 || b.MaxLng > 180 || b.MinLng > b.MaxLng {
			errs = append(errs, domain.FieldError{Field: "bounds", Message: "invalid longitude range"})
		}
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddPhotoInput holds parameters for attaching a photo to a memorial.
type AddPhotoInput struct {
	PetID   uuid.UUID
	URL     string
	Caption *string
}

// Validate validates the photo input.
func (i AddPhotoInput) Validate() error {
	var errs []domain.FieldError

	if i.URL == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	} else if len(i.URL) > maxURLLength {
		errs = append(errs, domain.FieldError{Field: "url", Message: "too long"})
	} else if u, err := url.Parse(i.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "must be an http(s) URL"})
	}

	if i.Caption != nil && utf8.RuneCountInString(*i.Caption) > maxCaptionLength {
		errs = append(errs, domain.FieldError{Field: "caption", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendText(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	switch n := utf8.RuneCountInString(strings.TrimSpace(value)); {
	case n == 0:
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case n > maxLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func appendLocation(errs []domain.FieldError, lat, lng *float64) []domain.FieldError {
	if (lat == nil) != (lng == nil) {
		return append(errs, domain.FieldError{Field: "location", Message: "latitude and longitude go together"})
	}
	if lat != nil && (*lat < -90 || *lat > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	return errs
}
