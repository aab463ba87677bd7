package token

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/dmitrymomot/tokenlib/pkg/hkdf"
)

// ParseToken verifies token against the manager's clock and returns its claims.
func (m *Manager) ParseToken(token string) (Claims, error) {
	return m.ParseTokenAt(token, m.now())
}

// ParseTokenAt verifies token as of now. The signature is checked before the
// payload is interpreted in any way. A token whose expiry equals now is expired.
func (m *Manager) ParseTokenAt(token string, now time.Time) (Claims, error) {
	payload, err := m.open(token)
	if err != nil {
		return nil, err
	}

	claims, err := decodeClaims(payload)
	if err != nil {
		return nil, err
	}

	expires, ok := claims.ExpiresUnix()
	if !ok {
		return nil, ErrMalformedToken
	}
	if expires <= unixSeconds(now) {
		return nil, ErrExpiredToken
	}

	return claims, nil
}

// DerivedSecret returns the per-token secret for token, URL-safe base64 encoded.
// The signature and expiry are not checked: only the salt is read back.
func (m *Manager) DerivedSecret(token string) (string, error) {
	payload, _, err := m.split(token)
	if err != nil {
		return "", err
	}

	claims, err := decodeClaims(payload)
	if err != nil {
		return "", err
	}
	salt, ok := claims.Salt()
	if !ok {
		return "", ErrMissingSalt
	}

	info := make([]byte, 0, len(DerivePrefix)+len(token))
	info = append(info, DerivePrefix...)
	info = append(info, token...)

	secret, err := hkdf.Derive(m.alg, m.secret, []byte(salt), info, m.DigestSize())
	if err != nil {
		return "", err
	}
	return EncodeBytes(secret), nil
}

// decodeClaims keeps numbers as json.Number so integer claims survive exactly.
func decodeClaims(payload []byte) (Claims, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var claims Claims
	if err := dec.Decode(&claims); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	// "null" decodes into a nil map without error.
	if claims == nil {
		return nil, ErrMalformedToken
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrMalformedToken, errTrailingData)
	}
	return claims, nil
}
