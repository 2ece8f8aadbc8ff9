// Package pet manages memorial pages and their photo galleries.
package pet

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/petmemorial-backend/internal/config"
	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

type petRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, int, error)
	Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PetUpdateParams, now time.Time) (*domain.Pet, error)
}

type photoRepo interface {
	Create(ctx context.Context, p *domain.PetPhoto) (*domain.PetPhoto, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.PetPhoto, error)
	CountByPet(ctx context.Context, petID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements memorial operations.
type Service struct {
	log    *slog.Logger
	pets   petRepo
	photos photoRepo
	tx     txManager
	cfg    config.GiftsConfig
	now    func() time.Time
}

// NewService creates a new pet service instance.
func NewService(logger *slog.Logger, pets petRepo, photos photoRepo, tx txManager, cfg config.GiftsConfig) *Service {
	return &Service{
		log:    logger.With("service", "pet"),
		pets:   pets,
		photos: photos,
		tx:     tx,
		cfg:    cfg,
		now:    time.Now,
	}
}
