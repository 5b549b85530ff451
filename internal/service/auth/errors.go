package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token failed validation for a reason
	// other than expiry. The more specific sentinels below wrap it, so
	// errors.Is(err, ErrInvalidToken) matches every non-expiry failure.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrInvalidSignature indicates the token signature does not match.
	ErrInvalidSignature = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)

	// ErrMalformedToken indicates the token is structurally invalid.
	ErrMalformedToken = fmt.Errorf("%w: malformed", ErrInvalidToken)

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
