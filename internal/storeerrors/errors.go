package storeerrors

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	ErrAuth               = errors.New("authentication failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAuthUnavailable    = errors.New("auth service unavailable")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrProfileWrite       = errors.New("profile write failed")
)

// Input and business rule errors
var (
	ErrValidation     = errors.New("validation failed")
	ErrBidTooLow      = errors.New("bid amount too low")
	ErrConflict       = errors.New("conflicting update")
	ErrAuctionClosed  = errors.New("auction closed")
	ErrAuctionNotOpen = errors.New("auction not open yet")
	ErrEmptyCart      = errors.New("cart is empty")
)

// Storage errors
var (
	ErrNotFound              = errors.New("not found")
	ErrCorruptPersistedState = errors.New("corrupt persisted state")
)

// ValidationError names the offending input. It is never sent to the backend.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a *ValidationError
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError reports that another bidder got there first
type ConflictError struct {
	AuctionID    string
	CurrentPrice float64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("someone else bid first on auction %s, current price is now %.2f", e.AuctionID, e.CurrentPrice)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
