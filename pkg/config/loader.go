package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed value per configuration type.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

func newCache() *cache {
	return &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

var (
	global = newCache()

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

// Load parses environment variables into v using `env` struct tags. Each
// configuration type is parsed once per process; later calls copy the cached value.
// A .env file in the working directory is applied first if it exists.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	key := typeKey[T]()

	if cached, ok := global.get(key); ok {
		*v = cached.(T)
		return nil
	}

	global.mu.Lock()
	once, ok := global.onces[key]
	if !ok {
		once = new(sync.Once)
		global.onces[key] = once
	}
	global.mu.Unlock()

	var err error
	once.Do(func() {
		var parsed T
		if perr := env.Parse(&parsed); perr != nil {
			err = errors.Join(ErrParsingConfig, perr)
			return
		}
		global.set(key, parsed)
	})
	if err != nil {
		// Allow a retry once the environment is fixed.
		global.mu.Lock()
		delete(global.onces, key)
		global.mu.Unlock()
		return err
	}

	if cached, ok := global.get(key); ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload discards the cached value for T and parses the environment again.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	key := typeKey[T]()
	global.mu.Lock()
	delete(global.values, key)
	delete(global.onces, key)
	global.mu.Unlock()
	return Load(v)
}

// LoadEnv applies the given dotenv files to the process environment, later
// files overriding earlier ones. With no arguments it loads ./.env.
// Variables already present in the environment are overwritten.
func LoadEnv(files ...string) error {
	defaultEnvMu.Lock()
	defaultEnvLoaded = true
	defaultEnvMu.Unlock()

	if err := godotenv.Overload(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache forgets every cached configuration. Intended for tests.
func ResetCache() {
	global.mu.Lock()
	global.values = make(map[string]any)
	global.onces = make(map[string]*sync.Once)
	global.mu.Unlock()
}

func loadDefaultEnv() {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()
	if defaultEnvLoaded {
		return
	}
	defaultEnvLoaded = true
	// A missing .env is normal.
	_ = godotenv.Load()
}

func (c *cache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *cache) set(key string, v any) {
	c.mu.Lock()
	c.values[key] = v
	c.mu.Unlock()
}

func typeKey[T any]() string {
	t := reflect.TypeFor[T]()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
