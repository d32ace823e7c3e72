package serviceerrs

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnexpected          = errors.New("unexpected error")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidCheckin      = errors.New("invalid check-in request")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnknownEventKind    = errors.New("unknown event kind")
	ErrInvalidConfig       = errors.New("invalid coins configuration")
	ErrNoSession           = errors.New("no redemption session")
)
