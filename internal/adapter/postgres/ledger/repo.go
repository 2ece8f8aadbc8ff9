// Package ledger implements the coin ledger repository using PostgreSQL.
// It provides append-only operations: every balance change writes one row
// in the same transaction, so the sum of a user's amounts equals the balance.
package ledger

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/ledger/sqlc"
	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ledger repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a ledger entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e domain.LedgerEntry) (domain.LedgerEntry, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.CreateCoinTransaction(ctx, sqlc.CreateCoinTransactionParams{
		ID:          e.ID,
		UserID:      e.UserID,
		Kind:        string(e.Kind),
		Amount:      e.Amount,
		PlacementID: e.PlacementID,
		CreatedAt:   e.CreatedAt,
	})
	if err != nil {
		return domain.LedgerEntry{}, postgres.MapError(err, "coin_transaction", e.ID)
	}
	return toDomainEntry(row), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns the most recent entries for a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	rows, err := q.ListCoinTransactionsByUser(ctx, sqlc.ListCoinTransactionsByUserParams{
		UserID: userID,
		Limit:  int32(min(max(limit, 0), math.MaxInt32)),
	})
	if err != nil {
		return nil, fmt.Errorf("list coin_transactions by user: %w", err)
	}

	entries := make([]domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, toDomainEntry(row))
	}
	return entries, nil
}

// SumByUser returns the net amount recorded for a user.
func (r *Repo) SumByUser(ctx context.Context, userID string) (int64, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	sum, err := q.SumCoinTransactionsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("sum coin_transactions: %w", err)
	}
	return sum, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainEntry(row sqlc.CoinTransaction) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:          row.ID,
		UserID:      row.UserID,
		Kind:        domain.LedgerKind(row.Kind),
		Amount:      row.Amount,
		PlacementID: row.PlacementID,
		CreatedAt:   row.CreatedAt,
	}
}
