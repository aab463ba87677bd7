package main

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/tokenlib/pkg/config"
	"github.com/dmitrymomot/tokenlib/pkg/logger"
	"github.com/dmitrymomot/tokenlib/pkg/token"
)

// common holds flags shared by every token subcommand.
type common struct {
	envFile   string
	secret    string
	timeout   time.Duration
	hash      string
	logLevel  string
	logFormat string
}

func (c *common) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.envFile, "env-file", "", "dotenv file to load before reading TOKEN_* variables")
	fs.StringVar(&c.secret, "secret", "", "master secret (overrides TOKEN_SECRET)")
	fs.DurationVar(&c.timeout, "timeout", 0, "token lifetime (overrides TOKEN_TIMEOUT)")
	fs.StringVar(&c.hash, "hash", "", "hash algorithm (overrides TOKEN_HASH)")
	fs.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&c.logFormat, "log-format", "text", "log format: text or json")
}

// setup resolves configuration and builds the logger and keyring.
func (c *common) setup(env *environment, fs *pflag.FlagSet) (*slog.Logger, *token.Keyring, error) {
	level, err := logger.ParseLevel(c.logLevel)
	if err != nil {
		return nil, nil, usageError("%v", err)
	}
	format, err := logger.ParseFormat(c.logFormat)
	if err != nil {
		return nil, nil, usageError("%v", err)
	}
	log := logger.New(
		logger.WithOutput(env.stderr),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithTool("tokenctl"),
	)

	if c.envFile != "" {
		if err := config.LoadEnv(c.envFile); err != nil {
			return nil, nil, err
		}
	}
	cfg, err := token.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if fs.Changed("secret") {
		cfg.Secret = c.secret
	}
	if fs.Changed("timeout") {
		cfg.Timeout = &c.timeout
	}
	if fs.Changed("hash") {
		cfg.Hash = c.hash
	}
	if cfg.Secret == "" {
		log.Warn("no secret configured, using a random per-process secret")
	}

	k, err := token.NewKeyringFromConfig(cfg, token.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	log.Debug("token manager ready",
		logger.Algorithm(k.Primary().Algorithm().String()),
		slog.Duration("timeout", k.Primary().Timeout()),
		slog.Int("candidates", k.Len()),
	)
	return log, k, nil
}

// parseFlags handles --help uniformly across subcommands.
func parseFlags(env *environment, fs *pflag.FlagSet, args []string) error {
	fs.SetOutput(env.stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return &exitError{code: exitOK}
		}
		return &exitError{code: exitUsage, err: err}
	}
	return nil
}

func runMint(env *environment, args []string) error {
	var (
		c          common
		claimPairs []string
		claimsJSON string
		withID     bool
	)
	fs := pflag.NewFlagSet("tokenctl mint", pflag.ContinueOnError)
	c.addFlags(fs)
	fs.StringArrayVar(&claimPairs, "claim", nil, "claim as key=value; repeatable, values are strings")
	fs.StringVar(&claimsJSON, "claims-json", "", "claims as a JSON object, merged before --claim values")
	fs.BoolVar(&withID, "id", false, "add a random UUID as the \"jti\" claim")
	if err := parseFlags(env, fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usageError("unexpected argument: %s", fs.Arg(0))
	}

	claims := token.Claims{}
	if claimsJSON != "" {
		dec := json.NewDecoder(strings.NewReader(claimsJSON))
		dec.UseNumber()
		if err := dec.Decode(&claims); err != nil {
			return usageError("--claims-json: %v", err)
		}
		if dec.More() {
			return usageError("--claims-json: unexpected data after object")
		}
		if claims == nil {
			claims = token.Claims{}
		}
	}
	for _, pair := range claimPairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return usageError("--claim %q: expected key=value", pair)
		}
		claims[key] = value
	}
	if withID {
		claims["jti"] = uuid.NewString()
	}

	log, k, err := c.setup(env, fs)
	if err != nil {
		return err
	}

	tok, err := k.MakeToken(claims)
	if err != nil {
		return err
	}
	log.Debug("token minted", logger.Fingerprint(tok), slog.Int("claims", len(claims)))
	fmt.Fprintln(env.stdout, tok)
	return nil
}

func runParse(env *environment, args []string) error {
	var (
		c      common
		now    float64
		output string
	)
	fs := pflag.NewFlagSet("tokenctl parse", pflag.ContinueOnError)
	c.addFlags(fs)
	fs.Float64Var(&now, "now", 0, "verify as of this Unix time instead of the current time")
	fs.StringVarP(&output, "output", "o", "json", "claims output format: json or yaml")
	if err := parseFlags(env, fs, args); err != nil {
		return err
	}
	if output != "json" && output != "yaml" {
		return usageError("--output must be json or yaml, got %q", output)
	}
	tok, err := tokenArg(env, fs)
	if err != nil {
		return err
	}

	log, k, err := c.setup(env, fs)
	if err != nil {
		return err
	}

	var claims token.Claims
	if fs.Changed("now") {
		claims, err = k.ParseTokenAt(tok, unixTime(now))
	} else {
		claims, err = k.ParseToken(tok)
	}
	if err != nil {
		return rejected(log, tok, err)
	}

	return writeClaims(env.stdout, claims, output)
}

func writeClaims(w io.Writer, claims token.Claims, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlValue(map[string]any(claims))); err != nil {
			return err
		}
		return enc.Close()
	}
	out, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// yamlValue turns json.Number into int64 or float64 so YAML gets plain
// scalars rather than quoted strings. Numbers outside both ranges stay text.
func yamlValue(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = yamlValue(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = yamlValue(e)
		}
		return out
	}
	return v
}

func runDerive(env *environment, args []string) error {
	var c common
	fs := pflag.NewFlagSet("tokenctl derive", pflag.ContinueOnError)
	c.addFlags(fs)
	if err := parseFlags(env, fs, args); err != nil {
		return err
	}
	tok, err := tokenArg(env, fs)
	if err != nil {
		return err
	}

	log, k, err := c.setup(env, fs)
	if err != nil {
		return err
	}

	secret, err := k.DerivedSecret(tok)
	if err != nil {
		return rejected(log, tok, err)
	}
	fmt.Fprintln(env.stdout, secret)
	return nil
}

func runKeygen(env *environment, args []string) error {
	var size int
	fs := pflag.NewFlagSet("tokenctl keygen", pflag.ContinueOnError)
	fs.IntVar(&size, "size", token.DefaultSecretSize, "secret length in bytes")
	if err := parseFlags(env, fs, args); err != nil {
		return err
	}
	if size < 16 {
		return usageError("--size must be at least 16, got %d", size)
	}

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return err
	}
	fmt.Fprintln(env.stdout, token.EncodeBytes(b))
	return nil
}

// tokenArg returns the single positional token, reading stdin for "-".
func tokenArg(env *environment, fs *pflag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", usageError("expected exactly one token argument, got %d", fs.NArg())
	}
	tok := fs.Arg(0)
	if tok != "-" {
		return tok, nil
	}
	line, err := bufio.NewReader(env.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func rejected(log *slog.Logger, tok string, err error) error {
	kind := token.Classify(err)
	log.Warn("token rejected",
		logger.Kind(kind.String()),
		logger.Fingerprint(tok),
		logger.Error(err),
	)
	if kind == token.KindOther {
		return err
	}
	return &exitError{code: exitInvalidToken, err: err}
}

func unixTime(sec float64) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*float64(time.Second)))
}
