package auctionerrors

import (
	"errors"
	"fmt"
)

// Session errors
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnauthorized     = errors.New("session rejected by server")
	ErrSessionNotFound  = errors.New("session key not found")
)

// Client-side validation errors
var (
	ErrMissingField       = errors.New("required field missing")
	ErrInvalidBid         = errors.New("invalid bid")
	ErrBidTooLow          = errors.New("bid must exceed current highest bid")
	ErrBidNotRollbackable = errors.New("only successful bids can be rolled back")
	ErrTopUpOutOfRange    = errors.New("top-up amount out of range")
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrPasswordUnchanged  = errors.New("new password must differ from the old one")
)

// Local state errors
var (
	ErrViewNotMounted = errors.New("live view not mounted")
	ErrNotCached      = errors.New("listing not cached")
)

// APIError is a non-2xx response from the auction API other than 401
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}
