package pet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
	"github.com/heartmarshall/petmemorial-backend/pkg/ctxutil"
)

// Create creates a memorial owned by the authenticated user.
// An empty environment defaults to MEADOW.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Pet, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Species = strings.TrimSpace(input.Species)
	if input.Environment == "" {
		input.Environment = domain.EnvironmentMeadow
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Microsecond)
	p := &domain.Pet{
		ID:          uuid.New(),
		OwnerID:     userID,
		Name:        input.Name,
		Species:     input.Species,
		Epitaph:     emptyToNil(input.Epitaph),
		BornOn:      input.BornOn,
		DiedOn:      input.DiedOn,
		Environment: input.Environment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Latitude != nil && input.Longitude != nil {
		p.Location = &domain.GeoPoint{Latitude: *input.Latitude, Longitude: *input.Longitude}
	}

	created, err := s.pets.Create(ctx, p)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("pet.Create: %w", err)
	}

	s.log.InfoContext(ctx, "memorial created",
		slog.String("pet_id", created.ID.String()),
		slog.String("owner_id", userID),
	)

	return created, nil
}

// Get returns a memorial by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	p, err := s.pets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("pet.Get: %w", err)
	}
	return p, nil
}

// Update applies a partial update. Only the memorial's owner may edit it.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Pet, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		input.Name = &trimmed
	}
	if input.Species != nil {
		trimmed := strings.TrimSpace(*input.Species)
		input.Species = &trimmed
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Pet

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.pets.LockByID(txCtx, input.PetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrPetNotFound
			}
			return fmt.Errorf("lock pet: %w", err)
		}
		if !current.IsOwnedBy(userID) {
			return domain.ErrForbidden
		}

		updated, err = s.pets.Update(txCtx, input.PetID, input.params(), s.now().UTC())
		if err != nil {
			return fmt.Errorf("update pet: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pet.Update: %w", err)
	}

	s.log.InfoContext(ctx, "memorial updated", slog.String("pet_id", input.PetID.String()))

	return updated, nil
}

// ListResult is a page of memorials with the total match count.
type ListResult struct {
	Pets  []domain.Pet
	Total int
}

// List returns memorials matching the input, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pets, total, err := s.pets.List(ctx, domain.PetFilter{
		OwnerID: input.OwnerID,
		Bounds:  input.Bounds,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("pet.List: %w", err)
	}

	return &ListResult{Pets: pets, Total: total}, nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
