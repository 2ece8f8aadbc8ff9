// Package gift implements the gift catalog and the placement transaction
// that debits an owner and attaches a gift to a memorial slot.
package gift

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/heartmarshall/petmemorial-backend/internal/config"
	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

type petRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
}

type catalogRepo interface {
	List(ctx context.Context) ([]domain.Gift, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Gift, error)
}

type placementRepo interface {
	HasActive(ctx context.Context, petID uuid.UUID, slot string, now time.Time) (bool, error)
	Create(ctx context.Context, p *domain.GiftPlacement) (*domain.GiftPlacement, error)
	GetView(ctx context.Context, id uuid.UUID) (*domain.PlacementView, error)
	ListActiveByPet(ctx context.Context, petID uuid.UUID, now time.Time) ([]domain.PlacementView, error)
}

type balanceRepo interface {
	Debit(ctx context.Context, id string, amount int64) (int64, error)
}

type ledgerRepo interface {
	Create(ctx context.Context, e domain.LedgerEntry) (domain.LedgerEntry, error)
}

// ownerProvisioner resolves an owner id to a user row, creating it on first
// use. It must honour a transaction carried by ctx.
type ownerProvisioner interface {
	GetOrCreate(ctx context.Context, ownerID string) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type placementRecorder interface {
	PlacementAttempt(result string, spent int64)
}

const catalogCacheKey = "catalog"

// Service implements gift catalog and placement operations.
type Service struct {
	log        *slog.Logger
	pets       petRepo
	catalog    catalogRepo
	placements placementRepo
	balances   balanceRepo
	ledger     ledgerRepo
	owners     ownerProvisioner
	tx         txManager
	metrics    placementRecorder
	cfg        config.GiftsConfig
	cache      *cache.Cache
	now        func() time.Time
}

// NewService creates a new gift service instance. A zero
// cfg.CatalogCacheTTL disables catalog caching.
func NewService(
	logger *slog.Logger,
	pets petRepo,
	catalog catalogRepo,
	placements placementRepo,
	balances balanceRepo,
	ledger ledgerRepo,
	owners ownerProvisioner,
	tx txManager,
	metrics placementRecorder,
	cfg config.GiftsConfig,
) *Service {
	s := &Service{
		log:        logger.With("service", "gift"),
		pets:       pets,
		catalog:    catalog,
		placements: placements,
		balances:   balances,
		ledger:     ledger,
		owners:     owners,
		tx:         tx,
		metrics:    metrics,
		cfg:        cfg,
		now:        time.Now,
	}
	if cfg.CatalogCacheTTL > 0 {
		s.cache = cache.New(cfg.CatalogCacheTTL, 2*cfg.CatalogCacheTTL)
	}
	return s
}
