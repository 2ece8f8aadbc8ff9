package owner

import (
	"strings"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

const maxOwnerIDLength = 255

func validateOwnerID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return domain.NewValidationError("ownerId", "required")
	case len(id) > maxOwnerIDLength:
		return domain.NewValidationError("ownerId", "too long")
	}
	return nil
}

// TopUpInput holds parameters for crediting a wallet.
type TopUpInput struct {
	UserID string
	Amount int64
}

// Validate validates the top-up input. maxAmount is the configured ceiling.
func (i TopUpInput) Validate(maxAmount int64) error {
	var errs []domain.FieldError

	if err := validateOwnerID(i.UserID); err != nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if i.Amount < 1 || i.Amount > maxAmount {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
