package service

import "errors"

// Sentinel errors the controllers translate into envelope responses.
// The wording of user-facing messages lives in the controllers; these
// only carry the classification.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidLoginInput  = errors.New("invalid login input")

	// ErrSessionNotFound covers both true absence and foreign ownership;
	// the two are intentionally indistinguishable.
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidRole     = errors.New("invalid role")
	ErrContentRequired = errors.New("content required")

	ErrMissingAPIKey = errors.New("missing provider api key")
)
