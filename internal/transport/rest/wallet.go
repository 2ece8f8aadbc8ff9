package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
	"github.com/heartmarshall/petmemorial-backend/internal/service/owner"
)

type walletService interface {
	Wallet(ctx context.Context, userID string) (*owner.Wallet, error)
	TopUp(ctx context.Context, input owner.TopUpInput) (*owner.TopUpResult, error)
}

// WalletHandler serves coin balance endpoints. User ids are the same opaque
// owner ids used for gift placement, so unknown ids are provisioned.
type WalletHandler struct {
	svc walletService
	log *slog.Logger
}

// NewWalletHandler creates a WalletHandler.
func NewWalletHandler(svc walletService, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{svc: svc, log: logger.With("handler", "wallet")}
}

type walletResponse struct {
	User         userResponse          `json:"user"`
	Transactions []transactionResponse `json:"transactions"`
}

type topUpRequest struct {
	Amount int64 `json:"amount" validate:"required,min=1"`
}

type topUpResponse struct {
	CoinBalance int64               `json:"coinBalance"`
	Transaction transactionResponse `json:"transaction"`
}

// Get handles GET /users/{userId}/wallet.
func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	wallet, err := h.svc.Wallet(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, walletResponse{
		User:         toUserResponse(wallet.User),
		Transactions: mapSlice(wallet.Entries, toTransactionResponse),
	})
}

// TopUp handles POST /users/{userId}/wallet/topup. Admin only.
func (h *WalletHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req topUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	result, err := h.svc.TopUp(r.Context(), owner.TopUpInput{UserID: userID, Amount: req.Amount})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, topUpResponse{
		CoinBalance: result.User.CoinBalance,
		Transaction: toTransactionResponse(result.Entry),
	})
}

// chi returns the raw segment when the path was escaped, so ids with
// reserved characters arrive percent-encoded.
func pathUserID(r *http.Request) (string, error) {
	id, err := url.PathUnescape(chi.URLParam(r, "userId"))
	if err != nil || id == "" {
		return "", domain.NewValidationError("userId", "invalid user id")
	}
	return id, nil
}
