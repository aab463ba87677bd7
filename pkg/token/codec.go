package token

import (
	"encoding/base64"
	"errors"
)

var (
	paddedEncoding   = base64.URLEncoding.Strict()
	unpaddedEncoding = base64.RawURLEncoding.Strict()
)

// EncodeBytes returns the padded URL-safe base64 form of b.
func EncodeBytes(b []byte) string {
	return base64.URLEncoding.EncodeToString(b)
}

// DecodeBytes reverses EncodeBytes. Input whose '=' padding was stripped in
// transit is accepted as well. Any decoding failure wraps ErrMalformedToken.
func DecodeBytes(s string) ([]byte, error) {
	enc := paddedEncoding
	if len(s)%4 != 0 {
		enc = unpaddedEncoding
	}
	b, err := enc.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	return b, nil
}
