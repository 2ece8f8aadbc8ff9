package pet

import (
	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies defaults and clamps pagination values.
func normalize(f domain.PetFilter) domain.PetFilter {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
