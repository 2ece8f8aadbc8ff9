package domain

import (
	"regexp"
	"strings"
	"time"
)

// DefaultOwnerEmailDomain is appended to opaque owner ids when synthesizing
// a placeholder email for an auto-provisioned user.
const DefaultOwnerEmailDomain = "owners.petmemorial.local"

// User is an account holding a coin balance. The ID is an opaque string:
// a UUID for registered users, or whatever the client supplied for
// auto-provisioned owners.
type User struct {
	ID           string
	Email        string
	Username     *string
	PasswordHash *string
	Role         UserRole
	CoinBalance  int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// CanAfford reports whether the balance covers amount.
func (u *User) CanAfford(amount int64) bool {
	return u.CoinBalance >= amount
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// SynthesizeOwnerEmail derives the email for an auto-provisioned owner.
// Ids containing '@' are used verbatim; otherwise whitespace runs become
// underscores and "@<domain>" is appended.
func SynthesizeOwnerEmail(ownerID, domainSuffix string) string {
	if strings.Contains(ownerID, "@") {
		return ownerID
	}
	if domainSuffix == "" {
		domainSuffix = DefaultOwnerEmailDomain
	}
	local := whitespaceRun.ReplaceAllString(ownerID, "_")
	return local + "@" + domainSuffix
}

// NewProvisionedUser builds the row inserted when an unknown owner id is
// first referenced. Balance starts at zero.
func NewProvisionedUser(ownerID, domainSuffix string, now time.Time) User {
	return User{
		ID:        ownerID,
		Email:     SynthesizeOwnerEmail(ownerID, domainSuffix),
		Role:      UserRoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
