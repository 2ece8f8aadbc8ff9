package gift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
	"github.com/heartmarshall/petmemorial-backend/internal/metrics"
)

// PlaceResult is returned by Place.
type PlaceResult struct {
	Placement   domain.PlacementView
	CoinBalance int64
	Spent       int64
}

// Place attaches a gift to a memorial slot and charges the owner.
//
// Checks run in order and fail fast: pet exists, gift exists, slot has no
// active placement, owner can afford price*months. The pet row is locked
// first so placements on one memorial are serialized; the exclusion
// constraint on gift_placements backs the occupancy check.
//
// The owner is provisioned, debited, and charged in a single transaction
// together with the placement and its ledger entry.
func (s *Service) Place(ctx context.Context, input PlaceInput) (*PlaceResult, error) {
	input.SlotName = strings.TrimSpace(input.SlotName)

	if err := input.Validate(s.cfg.MaxMonths); err != nil {
		s.metrics.PlacementAttempt(metrics.ResultInvalid, 0)
		return nil, err
	}

	months := s.cfg.DefaultMonths
	if input.Months != nil {
		months = *input.Months
	}

	var result PlaceResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now().UTC().Truncate(time.Microsecond)

		if _, err := s.pets.LockByID(txCtx, input.PetID); err != nil {
			if isNotFound(err) {
				return domain.ErrPetNotFound
			}
			return fmt.Errorf("lock pet: %w", err)
		}

		gift, err := s.catalog.GetByID(txCtx, input.GiftID)
		if err != nil {
			if isNotFound(err) {
				return domain.ErrGiftNotFound
			}
			return fmt.Errorf("get gift: %w", err)
		}

		occupied, err := s.placements.HasActive(txCtx, input.PetID, input.SlotName, now)
		if err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if occupied {
			return domain.ErrSlotOccupied
		}

		owner, err := s.owners.GetOrCreate(txCtx, input.OwnerID)
		if err != nil {
			return fmt.Errorf("provision owner: %w", err)
		}

		cost := domain.PlacementCost(gift.Price, months)
		if !owner.CanAfford(cost) {
			return domain.ErrInsufficientFunds
		}

		balance, err := s.balances.Debit(txCtx, owner.ID, cost)
		if err != nil {
			return fmt.Errorf("debit owner: %w", err)
		}

		placement, err := s.placements.Create(txCtx, &domain.GiftPlacement{
			ID:        uuid.New(),
			PetID:     input.PetID,
			GiftID:    gift.ID,
			OwnerID:   owner.ID,
			SlotName:  input.SlotName,
			Size:      input.Size,
			PlacedAt:  now,
			ExpiresAt: domain.PlacementExpiry(now, months),
		})
		if err != nil {
			return fmt.Errorf("create placement: %w", err)
		}

		// Free gifts leave no ledger trace: entries never carry a zero amount.
		if cost > 0 {
			if _, err := s.ledger.Create(txCtx, domain.LedgerEntry{
				ID:          uuid.New(),
				UserID:      owner.ID,
				Kind:        domain.LedgerKindGiftPurchase,
				Amount:      -cost,
				PlacementID: &placement.ID,
				CreatedAt:   now,
			}); err != nil {
				return fmt.Errorf("append ledger: %w", err)
			}
		}

		view, err := s.placements.GetView(txCtx, placement.ID)
		if err != nil {
			return fmt.Errorf("load placement: %w", err)
		}

		result = PlaceResult{Placement: *view, CoinBalance: balance, Spent: cost}
		return nil
	})

	s.metrics.PlacementAttempt(placementResult(err), result.Spent)

	if err != nil {
		s.log.DebugContext(ctx, "gift placement rejected",
			slog.String("pet_id", input.PetID.String()),
			slog.String("slot", input.SlotName),
			slog.String("code", domain.CodeOf(err).String()),
		)
		return nil, fmt.Errorf("gift.Place: %w", err)
	}

	s.log.InfoContext(ctx, "gift placed",
		slog.String("placement_id", result.Placement.ID.String()),
		slog.String("pet_id", input.PetID.String()),
		slog.String("owner_id", input.OwnerID),
		slog.String("slot", input.SlotName),
		slog.Int("months", months),
		slog.Int64("spent", result.Spent),
		slog.Int64("balance", result.CoinBalance),
	)

	return &result, nil
}

// ListPlacements returns the placements currently shown on a memorial.
func (s *Service) ListPlacements(ctx context.Context, petID uuid.UUID) ([]domain.PlacementView, error) {
	if _, err := s.pets.GetByID(ctx, petID); err != nil {
		if isNotFound(err) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("gift.ListPlacements get pet: %w", err)
	}

	views, err := s.placements.ListActiveByPet(ctx, petID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("gift.ListPlacements: %w", err)
	}
	return views, nil
}

func placementResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultPlaced
	case errors.Is(err, domain.ErrSlotOccupied):
		return metrics.ResultSlotOccupied
	case errors.Is(err, domain.ErrInsufficientFunds):
		return metrics.ResultInsufficientFunds
	case errors.Is(err, domain.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrValidation):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
