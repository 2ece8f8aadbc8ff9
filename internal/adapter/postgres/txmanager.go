package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"

	defaultTxAttempts = 3
)

// TxManager runs functions inside a transaction stored in the context.
// Repositories pick it up through QuerierFromCtx.
type TxManager struct {
	pool     *pgxpool.Pool
	attempts int
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithTxAttempts sets how many times an outermost transaction is attempted
// when PostgreSQL aborts it with a serialization failure or deadlock.
// Values below 1 are treated as 1.
func WithTxAttempts(n int) TxOption {
	return func(m *TxManager) {
		m.attempts = max(n, 1)
	}
}

// NewTxManager creates a TxManager on pool.
func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{pool: pool, attempts: defaultTxAttempts}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx executes fn in a Read Committed transaction and commits when fn
// returns nil. Any error or panic from fn rolls the transaction back.
//
// A context that already carries a transaction is reused, so the call joins
// the caller's unit of work. Only the outermost call retries: fn must be safe
// to run again when the database reports a serialization failure or deadlock.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	var err error
	for range m.attempts {
		err = m.runOnce(ctx, fn)
		if !isRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			// Also runs while a panic from fn unwinds.
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}
