package token

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/tokenlib/pkg/hashes"
)

// DefaultTimeout is the token lifetime used when WithTimeout is not given.
const DefaultTimeout = 5 * time.Minute

// Option configures a Manager or Keyring.
type Option func(*options)

type options struct {
	secret  []byte
	timeout time.Duration
	alg     hashes.Algorithm
	algName string
	now     func() time.Time
	logger  *slog.Logger
}

func defaultOptions() *options {
	return &options{
		timeout: DefaultTimeout,
		alg:     hashes.Default,
		now:     time.Now,
	}
}

// WithSecret sets the master secret. A nil secret keeps the process default.
func WithSecret(secret []byte) Option {
	return func(o *options) {
		if secret != nil {
			o.secret = secret
		}
	}
}

// WithSecretString sets the master secret from text. The string is used verbatim,
// so an empty string is an (insecure) empty secret rather than the default one.
func WithSecretString(secret string) Option {
	return func(o *options) {
		o.secret = []byte(secret)
	}
}

// WithTimeout sets how long minted tokens stay valid.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithAlgorithm selects the hash. It overrides an earlier WithAlgorithmName.
func WithAlgorithm(alg hashes.Algorithm) Option {
	return func(o *options) {
		o.alg = alg
		o.algName = ""
	}
}

// WithAlgorithmName selects the hash by name, e.g. "sha1" or "sha3-256".
// Unknown names make New fail with hashes.ErrUnsupportedAlgorithm.
func WithAlgorithmName(name string) Option {
	return func(o *options) {
		o.algName = name
	}
}

// WithClock overrides the time source used for minting and default parsing.
// Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger a Keyring reports candidate matches to.
// Managers never log.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
