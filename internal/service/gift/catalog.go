package gift

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// ListCatalog returns all gifts ordered by price, then name. The result is
// served from an in-process cache for cfg.CatalogCacheTTL; placement never
// reads prices from here. Callers get their own copy of the slice.
func (s *Service) ListCatalog(ctx context.Context) ([]domain.Gift, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(catalogCacheKey); ok {
			return slices.Clone(cached.([]domain.Gift)), nil
		}
	}

	gifts, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("gift.ListCatalog: %w", err)
	}

	if s.cache != nil {
		s.cache.SetDefault(catalogCacheKey, slices.Clone(gifts))
	}
	return gifts, nil
}

// GetGift returns one catalog item.
func (s *Service) GetGift(ctx context.Context, id uuid.UUID) (*domain.Gift, error) {
	g, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrGiftNotFound
		}
		return nil, fmt.Errorf("gift.GetGift: %w", err)
	}
	return g, nil
}

// InvalidateCatalog drops the cached catalog listing.
func (s *Service) InvalidateCatalog() {
	if s.cache != nil {
		s.cache.Delete(catalogCacheKey)
	}
}
