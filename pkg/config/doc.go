// Package config loads typed configuration from the process environment.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct-tag driven parsing. Each
// configuration type is parsed once and cached, so libraries and binaries
// can call Load freely.
//
// # Usage
//
//	type TokenConfig struct {
//	    Secret  string        `env:"TOKEN_SECRET"`
//	    Timeout time.Duration `env:"TOKEN_TIMEOUT" envDefault:"5m"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    log.Fatal(err)
//	}
//	var cfg TokenConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// When LoadEnv has not been called, the first Load applies ./.env if present.
//
// # Error Handling
//
//   - ErrParsingConfig: env.Parse rejected the environment (joined with the cause).
//   - ErrLoadingEnvFile: a dotenv file could not be read.
//   - ErrNilPointer: nil target.
//
// A failed parse is not cached; the next Load retries.
//
// # Testing Helpers
//
// ResetCache clears every cached type and ForceReload re-parses one type
// after the environment changed.
package config
