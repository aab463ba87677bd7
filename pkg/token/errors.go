package token

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken is the common category for every token validation failure.
	ErrInvalidToken = errors.New("token: invalid token")

	ErrMalformedToken   = fmt.Errorf("%w: token is malformed", ErrInvalidToken)
	ErrInvalidSignature = fmt.Errorf("%w: token has invalid signature", ErrInvalidToken)
	ErrExpiredToken     = fmt.Errorf("%w: token has expired", ErrInvalidToken)

	// ErrMissingSalt is a malformed token whose payload carries no string salt.
	ErrMissingSalt = fmt.Errorf("%w: payload has no salt", ErrMalformedToken)
)

var (
	ErrEncodeClaims   = errors.New("token: failed to encode claims")
	ErrGenerateSalt   = errors.New("token: failed to generate salt")
	ErrInvalidTimeout = errors.New("token: timeout must not be negative")
	ErrNoSecrets      = errors.New("token: keyring requires at least one secret")
)

var errTrailingData = errors.New("token: trailing data after claims object")

// Kind is a flat classification of a validation result, for callers that
// prefer a switch over errors.Is chains.
type Kind int

const (
	KindValid Kind = iota
	KindMalformed
	KindInvalidSignature
	KindExpired
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindMalformed:
		return "malformed"
	case KindInvalidSignature:
		return "invalid_signature"
	case KindExpired:
		return "expired"
	default:
		return "other"
	}
}

// Classify maps an error returned by this package to its Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindValid
	case errors.Is(err, ErrMalformedToken):
		return KindMalformed
	case errors.Is(err, ErrInvalidSignature):
		return KindInvalidSignature
	case errors.Is(err, ErrExpiredToken):
		return KindExpired
	default:
		return KindOther
	}
}
