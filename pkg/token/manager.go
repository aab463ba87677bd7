package token

import (
	"bytes"
	"crypto/hmac"
	"time"

	"github.com/dmitrymomot/tokenlib/pkg/hashes"
	"github.com/dmitrymomot/tokenlib/pkg/hkdf"
)

// HKDF info strings. They are part of the wire contract: changing them
// invalidates every token and derived secret already issued.
const (
	SigningInfo  = "services.mozilla.com/tokenlib/v1/signing"
	DerivePrefix = "services.mozilla.com/tokenlib/v1/derive/"
)

// Manager mints and verifies tokens for a single master secret.
// It is immutable after New and safe for concurrent use.
type Manager struct {
	secret     []byte
	signingKey []byte
	alg        hashes.Algorithm
	timeout    time.Duration
	now        func() time.Time
}

// New builds a Manager. Without WithSecret it uses the process default secret,
// so default managers in one process accept each other's tokens.
func New(opts ...Option) (*Manager, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return newManager(o)
}

// MustNew is like New but panics on misconfiguration.
func MustNew(opts ...Option) *Manager {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func newManager(o *options) (*Manager, error) {
	alg := o.alg
	if o.algName != "" {
		parsed, err := hashes.Parse(o.algName)
		if err != nil {
			return nil, err
		}
		alg = parsed
	}
	if !alg.Available() {
		return nil, hashes.ErrUnsupportedAlgorithm
	}
	if o.timeout < 0 {
		return nil, ErrInvalidTimeout
	}

	secret := o.secret
	if secret == nil {
		secret = DefaultSecret()
	} else {
		secret = bytes.Clone(secret)
	}

	signingKey, err := hkdf.Derive(alg, secret, nil, []byte(SigningInfo), alg.Size())
	if err != nil {
		return nil, err
	}

	return &Manager{
		secret:     secret,
		signingKey: signingKey,
		alg:        alg,
		timeout:    o.timeout,
		now:        o.now,
	}, nil
}

// Algorithm returns the hash used for signing and key derivation.
func (m *Manager) Algorithm() hashes.Algorithm { return m.alg }

// Timeout returns the lifetime given to tokens minted without an expires claim.
func (m *Manager) Timeout() time.Duration { return m.timeout }

// DigestSize is the length of the signature appended to every payload.
func (m *Manager) DigestSize() int { return m.alg.Size() }

func (m *Manager) sign(payload []byte) []byte {
	mac := hmac.New(m.alg.Func(), m.signingKey)
	mac.Write(payload)
	return mac.Sum(nil)
}

// split decodes a token and separates payload from the trailing signature.
// It performs no authentication.
func (m *Manager) split(token string) (payload, sig []byte, err error) {
	raw, err := DecodeBytes(token)
	if err != nil {
		return nil, nil, err
	}
	size := m.DigestSize()
	// An empty payload can never hold a JSON object.
	if len(raw) <= size {
		return nil, nil, ErrMalformedToken
	}
	return raw[:len(raw)-size], raw[len(raw)-size:], nil
}

// open returns the authenticated payload of token. Expiry is not checked.
func (m *Manager) open(token string) ([]byte, error) {
	payload, sig, err := m.split(token)
	if err != nil {
		return nil, err
	}
	if BytesDiffer(sig, m.sign(payload)) {
		return nil, ErrInvalidSignature
	}
	return payload, nil
}
