package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
	"github.com/heartmarshall/petmemorial-backend/internal/service/gift"
)

type giftService interface {
	Place(ctx context.Context, input gift.PlaceInput) (*gift.PlaceResult, error)
	ListPlacements(ctx context.Context, petID uuid.UUID) ([]domain.PlacementView, error)
	ListCatalog(ctx context.Context) ([]domain.Gift, error)
}

// GiftHandler serves the catalog and gift placement endpoints.
type GiftHandler struct {
	svc giftService
	log *slog.Logger
}

// NewGiftHandler creates a GiftHandler.
func NewGiftHandler(svc giftService, logger *slog.Logger) *GiftHandler {
	return &GiftHandler{svc: svc, log: logger.With("handler", "gift")}
}

// Months has no upper bound here: the service checks it against config.
type placeGiftRequest struct {
	OwnerID  string  `json:"ownerId"  validate:"required,max=255"`
	GiftID   string  `json:"giftId"   validate:"required"`
	SlotName string  `json:"slotName" validate:"required,max=100"`
	Months   *int    `json:"months"   validate:"omitempty,min=1"`
	Size     *string `json:"size"     validate:"omitempty,max=32"`
}

type placeGiftResponse struct {
	Placement   placementResponse `json:"placement"`
	CoinBalance int64             `json:"coinBalance"`
	Spent       int64             `json:"spent"`
}

// Place handles POST /pets/{petId}/gifts.
func (h *GiftHandler) Place(w http.ResponseWriter, r *http.Request) {
	petID, err := pathUUID(r, "petId", domain.ErrPetNotFound)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req placeGiftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	// A malformed gift id matches no catalog row. Passing uuid.Nil lets the
	// service report GIFT_NOT_FOUND after the pet check, keeping check order.
	giftID, err := uuid.Parse(req.GiftID)
	if err != nil {
		giftID = uuid.Nil
	}

	result, err := h.svc.Place(r.Context(), gift.PlaceInput{
		PetID:    petID,
		OwnerID:  req.OwnerID,
		GiftID:   giftID,
		SlotName: req.SlotName,
		Months:   req.Months,
		Size:     req.Size,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, placeGiftResponse{
		Placement:   toPlacementResponse(result.Placement),
		CoinBalance: result.CoinBalance,
		Spent:       result.Spent,
	})
}

// ListPlacements handles GET /pets/{petId}/gifts: the active gifts shown in
// the memorial scene.
func (h *GiftHandler) ListPlacements(w http.ResponseWriter, r *http.Request) {
	petID, err := pathUUID(r, "petId", domain.ErrPetNotFound)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	views, err := h.svc.ListPlacements(r.Context(), petID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(views, toPlacementResponse))
}

// ListCatalog handles GET /gifts.
func (h *GiftHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	gifts, err := h.svc.ListCatalog(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(gifts, toGiftResponse))
}
