// Package owner provisions gift owners on first reference and manages their
// coin wallets.
package owner

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/petmemorial-backend/internal/config"
	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// WalletHistoryLimit is the number of ledger entries returned with a wallet.
const WalletHistoryLimit = 50

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	InsertIfAbsent(ctx context.Context, u *domain.User) (bool, error)
	Credit(ctx context.Context, id string, amount int64) (int64, error)
}

type ledgerRepo interface {
	Create(ctx context.Context, e domain.LedgerEntry) (domain.LedgerEntry, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type topUpRecorder interface {
	TopUp(amount int64)
}

// Service implements owner provisioning and wallet operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	ledger  ledgerRepo
	tx      txManager
	metrics topUpRecorder
	cfg     config.GiftsConfig
	now     func() time.Time
}

// NewService creates a new owner service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	ledger ledgerRepo,
	tx txManager,
	metrics topUpRecorder,
	cfg config.GiftsConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "owner"),
		users:   users,
		ledger:  ledger,
		tx:      tx,
		metrics: metrics,
		cfg:     cfg,
		now:     time.Now,
	}
}
