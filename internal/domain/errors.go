package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// ErrorCode is a stable, language-independent identifier sent to clients
// alongside the human-readable message.
type ErrorCode string

const (
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeAlreadyExists     ErrorCode = "ALREADY_EXISTS"
	CodeValidation        ErrorCode = "VALIDATION"
	CodeUnauthenticated   ErrorCode = "UNAUTHENTICATED"
	CodeForbidden         ErrorCode = "FORBIDDEN"
	CodeConflict          ErrorCode = "CONFLICT"
	CodeInternal          ErrorCode = "INTERNAL"
	CodePetNotFound       ErrorCode = "PET_NOT_FOUND"
	CodeGiftNotFound      ErrorCode = "GIFT_NOT_FOUND"
	CodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	CodeSlotOccupied      ErrorCode = "SLOT_OCCUPIED"
	CodeInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	CodeEmailTaken        ErrorCode = "EMAIL_TAKEN"
)

func (c ErrorCode) String() string { return string(c) }

// CodedError is a business error with a stable code. It unwraps to its
// category sentinel, so errors.Is(err, ErrConflict) holds for SlotOccupied.
type CodedError struct {
	Code    ErrorCode
	Message string
	kind    error
}

func (e *CodedError) Error() string { return e.Message }

func (e *CodedError) Unwrap() error { return e.kind }

// NewCodedError creates a CodedError in the given category.
func NewCodedError(code ErrorCode, message string, kind error) *CodedError {
	return &CodedError{Code: code, Message: message, kind: kind}
}

// Business errors with dedicated codes.
var (
	ErrPetNotFound       = NewCodedError(CodePetNotFound, "pet not found", ErrNotFound)
	ErrGiftNotFound      = NewCodedError(CodeGiftNotFound, "gift not found", ErrNotFound)
	ErrUserNotFound      = NewCodedError(CodeUserNotFound, "user not found", ErrNotFound)
	ErrSlotOccupied      = NewCodedError(CodeSlotOccupied, "slot occupied", ErrConflict)
	ErrInsufficientFunds = NewCodedError(CodeInsufficientFunds, "insufficient funds", ErrConflict)
	ErrEmailTaken        = NewCodedError(CodeEmailTaken, "email already in use", ErrConflict)
)

// CodeOf returns the most specific code carried by err.
// Falls back to the category code, then to CodeInternal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAlreadyExists):
		return CodeAlreadyExists
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthenticated
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrConflict):
		return CodeConflict
	}
	return CodeInternal
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
