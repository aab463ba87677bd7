package token

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
)

// saltSize is the number of random bytes behind the hex salt claim.
const saltSize = 3

// MakeToken embeds claims in a new signed token. A random salt and an expiry of
// now plus the configured timeout are added unless claims already carry them.
// The caller's map is not modified.
func (m *Manager) MakeToken(claims Claims) (string, error) {
	data := claims.Clone()
	if _, ok := data[SaltKey]; !ok {
		salt, err := newSalt()
		if err != nil {
			return "", err
		}
		data[SaltKey] = salt
	}
	if _, ok := data[ExpiresKey]; !ok {
		data[ExpiresKey] = unixSeconds(m.now().Add(m.timeout))
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", errors.Join(ErrEncodeClaims, err)
	}

	return EncodeBytes(append(payload, m.sign(payload)...)), nil
}

func newSalt() (string, error) {
	b := make([]byte, saltSize)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrGenerateSalt, err)
	}
	return hex.EncodeToString(b), nil
}
