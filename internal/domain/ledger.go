package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntry is an append-only record of a coin balance change.
// Amount is signed: positive for credits, negative for debits.
type LedgerEntry struct {
	ID          uuid.UUID
	UserID      string
	Kind        LedgerKind
	Amount      int64
	PlacementID *uuid.UUID
	CreatedAt   time.Time
}
