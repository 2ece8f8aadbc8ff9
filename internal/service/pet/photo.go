package pet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
	"github.com/heartmarshall/petmemorial-backend/pkg/ctxutil"
)

// AddPhoto attaches an already uploaded picture to a memorial.
// Only the owner may add photos, up to cfg.MaxPhotosPerPet per memorial.
func (s *Service) AddPhoto(ctx context.Context, input AddPhotoInput) (*domain.PetPhoto, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.PetPhoto

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.pets.LockByID(txCtx, input.PetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrPetNotFound
			}
			return fmt.Errorf("lock pet: %w", err)
		}
		if !p.IsOwnedBy(userID) {
			return domain.ErrForbidden
		}

		count, err := s.photos.CountByPet(txCtx, input.PetID)
		if err != nil {
			return fmt.Errorf("count photos: %w", err)
		}
		if count >= s.cfg.MaxPhotosPerPet {
			return domain.NewValidationError("photos", fmt.Sprintf("limit of %d reached", s.cfg.MaxPhotosPerPet))
		}

		created, err = s.photos.Create(txCtx, &domain.PetPhoto{
			ID:        uuid.New(),
			PetID:     input.PetID,
			URL:       input.URL,
			Caption:   emptyToNil(input.Caption),
			CreatedAt: s.now().UTC().Truncate(time.Microsecond),
		})
		if err != nil {
			return fmt.Errorf("create photo: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pet.AddPhoto: %w", err)
	}

	s.log.InfoContext(ctx, "photo added",
		slog.String("pet_id", input.PetID.String()),
		slog.String("photo_id", created.ID.String()),
	)

	return created, nil
}

// ListPhotos returns a memorial's photos, oldest first.
func (s *Service) ListPhotos(ctx context.Context, petID uuid.UUID) ([]domain.PetPhoto, error) {
	if _, err := s.Get(ctx, petID); err != nil {
		return nil, err
	}

	photos, err := s.photos.ListByPet(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("pet.ListPhotos: %w", err)
	}
	return photos, nil
}
