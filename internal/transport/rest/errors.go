package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// CodePayloadTooLarge is returned with 413 responses.
const CodePayloadTooLarge domain.ErrorCode = "PAYLOAD_TOO_LARGE"

type errorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// writeError maps a service error to an HTTP status and writes
// {"error","code"}. Unexpected errors are logged and reported as 500 INTERNAL
// without leaking their text.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, resp := describeError(err)

	if status >= http.StatusInternalServerError {
		level := slog.LevelError
		if errors.Is(err, context.Canceled) {
			level = slog.LevelWarn
		}
		log.Log(r.Context(), level, "request failed", slog.String("error", err.Error()))
	}

	writeJSON(w, status, resp)
}

func describeError(err error) (int, errorResponse) {
	if errors.Is(err, errBodyTooLarge) {
		return http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error(), Code: CodePayloadTooLarge.String()}
	}

	code := domain.CodeOf(err)
	resp := errorResponse{Code: code.String()}

	var (
		ve *domain.ValidationError
		ce *domain.CodedError
	)
	switch {
	case errors.As(err, &ve):
		resp.Error = ve.Error()
		resp.Fields = ve.Errors
	case errors.As(err, &ce):
		resp.Error = ce.Message
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		resp.Error = "internal server error"
	} else if resp.Error == "" {
		resp.Error = categoryMessage(err)
	}
	return status, resp
}

var categories = []error{ //nolint:gochecknoglobals
	domain.ErrNotFound,
	domain.ErrAlreadyExists,
	domain.ErrUnauthorized,
	domain.ErrForbidden,
	domain.ErrConflict,
	domain.ErrValidation,
}

// categoryMessage returns the sentinel text, never the wrapped chain, so
// internal call paths stay out of responses.
func categoryMessage(err error) string {
	for _, c := range categories {
		if errors.Is(err, c) {
			return c.Error()
		}
	}
	return "request failed"
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	// Placement rejections are client errors in the public contract, not 409s.
	case errors.Is(err, domain.ErrSlotOccupied), errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
