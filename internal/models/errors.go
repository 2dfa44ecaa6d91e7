package models

import "errors"

// Domain errors. All four are recoverable at the call site; none should
// abort a session. ErrExternalUnavailable is internal only: callers of the
// copy/try-on services receive fallback text, never this error.
var (
	ErrNotFound            = errors.New("not found")
	ErrExpiredOffer        = errors.New("offer expired")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrExternalUnavailable = errors.New("external service unavailable")
)
