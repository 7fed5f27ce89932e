package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")

	// ErrDeliveryFailed marks a PIN that was stored but could not be sent.
	// It is the only auth failure surfaced distinctly to the caller.
	ErrDeliveryFailed = errors.New("delivery failed")
)
