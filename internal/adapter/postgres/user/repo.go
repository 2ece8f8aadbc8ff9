// Package user implements the User repository using PostgreSQL.
// Besides account CRUD it owns the coin balance: every balance change goes
// through a single guarded UPDATE.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/user/sqlc"
	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// Repo provides user and coin balance persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetUserByID(ctx, id)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomainUser(row)
	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	u := toDomainUser(row)
	return &u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists on a duplicate id, email or username.
// A duplicate email additionally matches domain.ErrEmailTaken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.CreateUser(ctx, sqlc.CreateUserParams{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CoinBalance:  u.CoinBalance,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	})
	if err != nil {
		return nil, mapWriteError(err, u.ID)
	}

	created := toDomainUser(row)
	return &created, nil
}

// InsertIfAbsent inserts a provisioned user unless a row with the same id
// already exists. It reports whether a row was written.
// Returns domain.ErrAlreadyExists when the email belongs to another user.
func (r *Repo) InsertIfAbsent(ctx context.Context, u *domain.User) (bool, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	n, err := q.InsertUserIfAbsent(ctx, sqlc.InsertUserIfAbsentParams{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
	if err != nil {
		return false, mapWriteError(err, u.ID)
	}
	return n == 1, nil
}

// Debit atomically subtracts amount from the balance and returns the new
// balance. The WHERE clause guards against overdraft, so two concurrent debits
// can never both pass on a balance that covers only one of them.
// Returns domain.ErrInsufficientFunds if the balance does not cover amount.
func (r *Repo) Debit(ctx context.Context, id string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("user %s: debit amount %d: %w", id, amount, domain.ErrValidation)
	}

	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	balance, err := q.DebitBalance(ctx, sqlc.DebitBalanceParams{Amount: amount, ID: id})
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("user %s: debit %d: %w", id, amount, domain.ErrInsufficientFunds)
	}
	if err != nil {
		return 0, postgres.MapError(err, "user", id)
	}
	return balance, nil
}

// Credit atomically adds amount to the balance and returns the new balance.
func (r *Repo) Credit(ctx context.Context, id string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("user %s: credit amount %d: %w", id, amount, domain.ErrValidation)
	}

	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	balance, err := q.CreditBalance(ctx, sqlc.CreditBalanceParams{Amount: amount, ID: id})
	if err != nil {
		return 0, postgres.MapError(err, "user", id)
	}
	return balance, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

const emailConstraint = "users_email_key"

func mapWriteError(err error, id string) error {
	mapped := postgres.MapError(err, "user", id)
	if postgres.ConstraintName(err) == emailConstraint {
		return fmt.Errorf("%w: %w", domain.ErrEmailTaken, mapped)
	}
	return mapped
}

func toDomainUser(row sqlc.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		Role:         domain.UserRole(row.Role),
		CoinBalance:  row.CoinBalance,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
