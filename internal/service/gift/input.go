package gift

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// MaxSizeLength caps the optional size label, counted in characters. The
// REST placement DTO carries the same bound in its validate tag.
const MaxSizeLength = 32

const (
	maxOwnerIDLength  = 255
	maxSlotNameLength = 100
)

// PlaceInput holds parameters for placing a gift on a memorial.
type PlaceInput struct {
	PetID    uuid.UUID
	OwnerID  string
	GiftID   uuid.UUID
	SlotName string
	// Months is the placement duration. nil means the configured default;
	// 0 means permanent.
	Months *int
	Size   *string
}

// Validate validates the placement input. maxMonths is the configured ceiling.
func (i PlaceInput) Validate(maxMonths int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.OwnerID) == "" {
		errs = append(errs, domain.FieldError{Field: "ownerId", Message: "required"})
	} else if len(i.OwnerID) > maxOwnerIDLength {
		errs = append(errs, domain.FieldError{Field: "ownerId", Message: "too long"})
	}

	if i.SlotName == "" {
		errs = append(errs, domain.FieldError{Field: "slotName", Message: "required"})
	} else if len(i.SlotName) > maxSlotNameLength {
		errs = append(errs, domain.FieldError{Field: "slotName", Message: "too long"})
	}

	if i.Months != nil && (*i.Months < 0 || *i.Months > maxMonths) {
		errs = append(errs, domain.FieldError{Field: "months", Message: "out of range"})
	}

	if i.Size != nil && utf8.RuneCountInString(*i.Size) > MaxSizeLength {
		errs = append(errs, domain.FieldError{Field: "size", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
