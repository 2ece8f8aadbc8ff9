package rest

import (
	"time"

	"github.com/samber/lo"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

const dateLayout = time.DateOnly

type giftResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ModelURL string `json:"modelUrl"`
}

type ownerResponse struct {
	ID       string  `json:"id"`
	Username *string `json:"username,omitempty"`
}

type placementResponse struct {
	ID        string        `json:"id"`
	PetID     string        `json:"petId"`
	SlotName  string        `json:"slotName"`
	Size      *string       `json:"size,omitempty"`
	PlacedAt  time.Time     `json:"placedAt"`
	ExpiresAt *time.Time    `json:"expiresAt"`
	Gift      giftResponse  `json:"gift"`
	Owner     ownerResponse `json:"owner"`
}

type locationResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type petResponse struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"ownerId"`
	Name        string            `json:"name"`
	Species     string            `json:"species"`
	Epitaph     *string           `json:"epitaph,omitempty"`
	BornOn      *string           `json:"bornOn,omitempty"`
	DiedOn      *string           `json:"diedOn,omitempty"`
	Location    *locationResponse `json:"location,omitempty"`
	Environment string            `json:"environment"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type photoResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"petId"`
	URL       string    `json:"url"`
	Caption   *string   `json:"caption,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type transactionResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Amount      int64     `json:"amount"`
	PlacementID *string   `json:"placementId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type userResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Username    *string `json:"username,omitempty"`
	Role        string  `json:"role"`
	CoinBalance int64   `json:"coinBalance"`
}

func toGiftResponse(g domain.Gift) giftResponse {
	return giftResponse{
		ID:       g.ID.String(),
		Code:     g.Code,
		Name:     g.Name,
		Price:    g.Price,
		ModelURL: g.ModelURL,
	}
}

func toPlacementResponse(v domain.PlacementView) placementResponse {
	return placementResponse{
		ID:        v.ID.String(),
		PetID:     v.PetID.String(),
		SlotName:  v.SlotName,
		Size:      v.Size,
		PlacedAt:  v.PlacedAt,
		ExpiresAt: v.ExpiresAt,
		Gift:      toGiftResponse(v.Gift),
		Owner:     ownerResponse{ID: v.Owner.ID, Username: v.Owner.Username},
	}
}

func toPetResponse(p domain.Pet) petResponse {
	resp := petResponse{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Species:     p.Species,
		Epitaph:     p.Epitaph,
		BornOn:      formatDate(p.BornOn),
		DiedOn:      formatDate(p.DiedOn),
		Environment: p.Environment.String(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Location != nil {
		resp.Location = &locationResponse{Latitude: p.Location.Latitude, Longitude: p.Location.Longitude}
	}
	return resp
}

func toPhotoResponse(p domain.PetPhoto) photoResponse {
	return photoResponse{
		ID:        p.ID.String(),
		PetID:     p.PetID.String(),
		URL:       p.URL,
		Caption:   p.Caption,
		CreatedAt: p.CreatedAt,
	}
}

func toTransactionResponse(e domain.LedgerEntry) transactionResponse {
	resp := transactionResponse{
		ID:        e.ID.String(),
		Kind:      e.Kind.String(),
		Amount:    e.Amount,
		CreatedAt: e.CreatedAt,
	}
	if e.PlacementID != nil {
		resp.PlacementID = lo.ToPtr(e.PlacementID.String())
	}
	return resp
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		Role:        u.Role.String(),
		CoinBalance: u.CoinBalance,
	}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	return lo.Map(items, func(item T, _ int) R { return fn(item) })
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return lo.ToPtr(t.Format(dateLayout))
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
