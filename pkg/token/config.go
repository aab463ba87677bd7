package token

import (
	"slices"
	"time"

	"github.com/dmitrymomot/tokenlib/pkg/config"
)

// Config is the environment representation of Manager and Keyring settings.
type Config struct {
	// Secret is the primary master secret. Empty means the process default.
	Secret string `env:"TOKEN_SECRET"`

	// Secrets lists further candidates accepted by a Keyring, after Secret.
	Secrets []string `env:"TOKEN_SECRETS" envSeparator:","`

	// Timeout is the token lifetime. Nil keeps DefaultTimeout; a pointer to
	// zero mints tokens that are already expired.
	Timeout *time.Duration `env:"TOKEN_TIMEOUT" envDefault:"5m"`
	Hash    string         `env:"TOKEN_HASH" envDefault:"sha256"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	// The loader caches cfg; detach shared references from the cached copy.
	cfg.Secrets = slices.Clone(cfg.Secrets)
	if cfg.Timeout != nil {
		d := *cfg.Timeout
		cfg.Timeout = &d
	}
	return cfg, nil
}

// Options converts cfg into Manager options. The secret is not included. A nil
// Timeout and an empty Hash keep the package defaults.
func (c Config) Options() []Option {
	var opts []Option
	if c.Timeout != nil {
		opts = append(opts, WithTimeout(*c.Timeout))
	}
	if c.Hash != "" {
		opts = append(opts, WithAlgorithmName(c.Hash))
	}
	return opts
}

// NewFromConfig builds a Manager for cfg.Secret. Extra opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	all := cfg.Options()
	if cfg.Secret != "" {
		all = append(all, WithSecretString(cfg.Secret))
	}
	return New(append(all, opts...)...)
}

// NewKeyringFromConfig builds a Keyring from cfg.Secret followed by cfg.Secrets.
// With no secrets configured the keyring holds only the process default secret.
func NewKeyringFromConfig(cfg Config, opts ...Option) (*Keyring, error) {
	var secrets [][]byte
	if cfg.Secret != "" {
		secrets = append(secrets, []byte(cfg.Secret))
	}
	for _, s := range cfg.Secrets {
		if s != "" {
			secrets = append(secrets, []byte(s))
		}
	}
	if len(secrets) == 0 {
		secrets = append(secrets, DefaultSecret())
	}
	return NewKeyring(secrets, append(cfg.Options(), opts...)...)
}
