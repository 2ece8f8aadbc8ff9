package owner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// GetOrCreate returns the user with the given id, creating it with a zero
// balance and a synthesized email if it does not exist yet. Calling it again
// returns the existing row unchanged.
//
// When ctx carries a transaction the new row belongs to it and disappears on
// rollback. Returns domain.ErrEmailTaken if the synthesized email already
// belongs to a different user.
func (s *Service) GetOrCreate(ctx context.Context, ownerID string) (*domain.User, error) {
	if err := validateOwnerID(ownerID); err != nil {
		return nil, err
	}

	u := domain.NewProvisionedUser(ownerID, s.cfg.OwnerEmailDomain, s.now().UTC())

	created, err := s.users.InsertIfAbsent(ctx, &u)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("owner.GetOrCreate insert: %w", err)
	}

	user, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("owner.GetOrCreate get: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "owner provisioned",
			slog.String("owner_id", ownerID),
			slog.String("email", user.Email),
		)
	}

	return user, nil
}
