package catalogsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

type catalogRepo interface {
	Upsert(ctx context.Context, g *domain.Gift) (*domain.Gift, bool, error)
}

// Result summarizes a sync run.
type Result struct {
	Inserted int
	Updated  int
	Duration time.Duration
}

// Syncer writes catalog items through the gift repository.
type Syncer struct {
	log  *slog.Logger
	repo catalogRepo
	now  func() time.Time
}

// NewSyncer creates a Syncer.
func NewSyncer(logger *slog.Logger, repo catalogRepo) *Syncer {
	return &Syncer{
		log:  logger.With("component", "catalog-sync"),
		repo: repo,
		now:  time.Now,
	}
}

// Run upserts every item in file. With dryRun set nothing is written and the
// result counts every item as inserted. The first failing item aborts the run.
func (s *Syncer) Run(ctx context.Context, file *File, dryRun bool) (Result, error) {
	start := s.now()
	var res Result

	for _, item := range file.Gifts {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("catalogsync.Run: %w", err)
		}

		if dryRun {
			s.log.InfoContext(ctx, "dry run", slog.String("code", item.Code), slog.Int64("price", item.Price))
			res.Inserted++
			continue
		}

		now := s.now().UTC()
		_, inserted, err := s.repo.Upsert(ctx, &domain.Gift{
			ID:        uuid.New(),
			Code:      item.Code,
			Name:      item.Name,
			Price:     item.Price,
			ModelURL:  item.ModelURL,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return res, fmt.Errorf("catalogsync.Run: upsert %s: %w", item.Code, err)
		}

		if inserted {
			res.Inserted++
		} else {
			res.Updated++
		}
		s.log.DebugContext(ctx, "gift synced", slog.String("code", item.Code), slog.Bool("inserted", inserted))
	}

	res.Duration = s.now().Sub(start)
	return res, nil
}
