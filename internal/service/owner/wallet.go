package owner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
	"github.com/heartmarshall/petmemorial-backend/pkg/ctxutil"
)

// Wallet is a user's balance together with its most recent ledger entries.
type Wallet struct {
	User    *domain.User
	Entries []domain.LedgerEntry
}

// TopUpResult is returned by TopUp.
type TopUpResult struct {
	User  *domain.User
	Entry domain.LedgerEntry
}

// Wallet returns the balance and recent history of userID, provisioning the
// user if needed.
func (s *Service) Wallet(ctx context.Context, userID string) (*Wallet, error) {
	user, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledger.ListByUser(ctx, user.ID, WalletHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("owner.Wallet list ledger: %w", err)
	}

	return &Wallet{User: user, Entries: entries}, nil
}

// TopUp credits coins to a wallet (admin only). The balance change and its
// ledger entry are written in one transaction.
func (s *Service) TopUp(ctx context.Context, input TopUpInput) (*TopUpResult, error) {
	if !ctxutil.IsAdmin(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(s.cfg.MaxTopUp); err != nil {
		return nil, err
	}

	var result TopUpResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.GetOrCreate(txCtx, input.UserID)
		if err != nil {
			return err
		}

		balance, err := s.users.Credit(txCtx, user.ID, input.Amount)
		if err != nil {
			return fmt.Errorf("credit: %w", err)
		}
		user.CoinBalance = balance

		entry, err := s.ledger.Create(txCtx, domain.LedgerEntry{
			ID:        uuid.New(),
			UserID:    user.ID,
			Kind:      domain.LedgerKindTopUp,
			Amount:    input.Amount,
			CreatedAt: s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("append ledger: %w", err)
		}

		result = TopUpResult{User: user, Entry: entry}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("owner.TopUp: %w", err)
	}

	s.metrics.TopUp(input.Amount)

	callerID, _ := ctxutil.UserIDFromCtx(ctx)
	s.log.InfoContext(ctx, "wallet topped up",
		slog.String("user_id", input.UserID),
		slog.String("admin_id", callerID),
		slog.Int64("amount", input.Amount),
		slog.Int64("balance", result.User.CoinBalance),
	)

	return &result, nil
}
