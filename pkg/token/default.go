package token

import (
	"bytes"
	"crypto/rand"
	"sync"
	"time"
)

// DefaultSecretSize is the length of the process default secret.
const DefaultSecretSize = 32

// defaultSecret is generated on first use and fixed for the life of the process.
var defaultSecret = sync.OnceValue(func() []byte {
	b := make([]byte, DefaultSecretSize)
	if _, err := rand.Read(b); err != nil {
		panic("token: cannot generate default secret: " + err.Error())
	}
	return b
})

// DefaultSecret returns a copy of the process default secret.
func DefaultSecret() []byte {
	return bytes.Clone(defaultSecret())
}

// MakeToken mints a token with a Manager built from opts.
func MakeToken(claims Claims, opts ...Option) (string, error) {
	m, err := New(opts...)
	if err != nil {
		return "", err
	}
	return m.MakeToken(claims)
}

// ParseToken verifies a token with a Manager built from opts.
func ParseToken(token string, opts ...Option) (Claims, error) {
	m, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return m.ParseToken(token)
}

// ParseTokenAt verifies a token as of now with a Manager built from opts.
func ParseTokenAt(token string, now time.Time, opts ...Option) (Claims, error) {
	m, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return m.ParseTokenAt(token, now)
}

// DerivedSecret computes the per-token secret with a Manager built from opts.
func DerivedSecret(token string, opts ...Option) (string, error) {
	m, err := New(opts...)
	if err != nil {
		return "", err
	}
	return m.DerivedSecret(token)
}
