package models

import "errors"

// Domain specific errors for session resolution.
var (
	ErrUnauthenticated  = errors.New("authentication required or invalid credentials")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrMalformedSession = errors.New("session is missing username or role")
	ErrBadRequest       = errors.New("bad request")
)
