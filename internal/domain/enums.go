package domain

// UserRole represents the authorization role of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// LedgerKind classifies a coin balance movement.
type LedgerKind string

const (
	LedgerKindTopUp        LedgerKind = "TOPUP"
	LedgerKindGiftPurchase LedgerKind = "GIFT_PURCHASE"
)

func (k LedgerKind) String() string { return string(k) }

func (k LedgerKind) IsValid() bool {
	switch k {
	case LedgerKindTopUp, LedgerKindGiftPurchase:
		return true
	}
	return false
}

// Environment is the decoration configuration a memorial scene is built on.
// It determines which slot names exist; the catalog of slots itself lives
// with the client assets and is not stored in the database.
type Environment string

const (
	EnvironmentMeadow Environment = "MEADOW"
	EnvironmentGarden Environment = "GARDEN"
	EnvironmentHouse  Environment = "HOUSE"
	EnvironmentBeach  Environment = "BEACH"
)

func (e Environment) String() string { return string(e) }

func (e Environment) IsValid() bool {
	switch e {
	case EnvironmentMeadow, EnvironmentGarden, EnvironmentHouse, EnvironmentBeach:
		return true
	}
	return false
}
