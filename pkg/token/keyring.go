package token

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/tokenlib/pkg/logger"
)

// Keyring verifies tokens against an ordered list of candidate secrets and
// mints with the first one. Which secrets are listed, and in what order, is
// entirely up to the caller.
type Keyring struct {
	managers []*Manager
	log      *slog.Logger
}

// NewKeyring builds one Manager per secret, all sharing opts.
func NewKeyring(secrets [][]byte, opts ...Option) (*Keyring, error) {
	if len(secrets) == 0 {
		return nil, ErrNoSecrets
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger
	if log == nil {
		log = logger.Discard()
	}

	managers := make([]*Manager, 0, len(secrets))
	for _, secret := range secrets {
		if secret == nil {
			secret = []byte{}
		}
		mo := *o
		mo.secret = secret
		m, err := newManager(&mo)
		if err != nil {
			return nil, err
		}
		managers = append(managers, m)
	}

	return &Keyring{
		managers: managers,
		log:      log.With(logger.Component("keyring")),
	}, nil
}

// Primary returns the Manager used for minting.
func (k *Keyring) Primary() *Manager { return k.managers[0] }

// Len returns the number of candidate secrets.
func (k *Keyring) Len() int { return len(k.managers) }

// MakeToken mints with the primary secret.
func (k *Keyring) MakeToken(claims Claims) (string, error) {
	return k.Primary().MakeToken(claims)
}

// ParseToken is ParseTokenAt with the primary manager's clock.
func (k *Keyring) ParseToken(token string) (Claims, error) {
	return k.ParseTokenAt(token, k.Primary().now())
}

// ParseTokenAt tries each candidate in order. A signature mismatch moves on to
// the next candidate; any other outcome is final, because it means either the
// token cannot be decoded at all or a candidate has authenticated it.
func (k *Keyring) ParseTokenAt(token string, now time.Time) (Claims, error) {
	var lastErr error
	for i, m := range k.managers {
		claims, err := m.ParseTokenAt(token, now)
		if err == nil {
			k.logMatch(i, token)
			return claims, nil
		}
		if !errors.Is(err, ErrInvalidSignature) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// DerivedSecret computes the per-token secret with whichever candidate signed
// the token. Expiry is ignored. Unlike Manager.DerivedSecret the signature is
// checked, since it is the only way to tell which secret applies.
func (k *Keyring) DerivedSecret(token string) (string, error) {
	for i, m := range k.managers {
		_, err := m.open(token)
		if err == nil {
			k.logMatch(i, token)
			return m.DerivedSecret(token)
		}
		if !errors.Is(err, ErrInvalidSignature) {
			return "", err
		}
	}
	return "", ErrInvalidSignature
}

func (k *Keyring) logMatch(i int, token string) {
	if i == 0 {
		return
	}
	k.log.Debug("token verified with non-primary secret",
		logger.Candidate(i),
		logger.Fingerprint(token),
	)
}
