package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/tokenlib/pkg/config"
	"github.com/dmitrymomot/tokenlib/pkg/hashes"
	"github.com/dmitrymomot/tokenlib/pkg/token"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func invoke(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

// cleanEnv isolates a test from TOKEN_* variables and cached configuration.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TOKEN_SECRET", "TOKEN_SECRETS", "TOKEN_TIMEOUT", "TOKEN_HASH"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	config.ResetCache()
	t.Cleanup(config.ResetCache)
}

func TestMintParseDerive(t *testing.T) {
	cleanEnv(t)

	res := invoke(t, "", "mint", "--secret", "s3cret", "--claim", "user=alice", "--claims-json", `{"n":7}`)
	require.Equal(t, exitOK, res.code, res.stderr)
	tok := strings.TrimSpace(res.stdout)
	require.NotEmpty(t, tok)

	res = invoke(t, "", "parse", "--secret", "s3cret", tok)
	require.Equal(t, exitOK, res.code, res.stderr)
	var claims map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &claims))
	assert.Equal(t, "alice", claims["user"])
	assert.Equal(t, 7.0, claims["n"])
	assert.Contains(t, claims, "salt")
	assert.Contains(t, claims, "expires")

	res = invoke(t, "", "derive", "--secret", "s3cret", tok)
	require.Equal(t, exitOK, res.code, res.stderr)

	m, err := token.New(token.WithSecretString("s3cret"))
	require.NoError(t, err)
	want, err := m.DerivedSecret(tok)
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(res.stdout))
}

func TestMint_ID(t *testing.T) {
	cleanEnv(t)

	res := invoke(t, "", "mint", "--secret", "s3cret", "--id")
	require.Equal(t, exitOK, res.code, res.stderr)

	claims, err := token.ParseToken(strings.TrimSpace(res.stdout), token.WithSecretString("s3cret"))
	require.NoError(t, err)
	id, ok := claims["jti"].(string)
	require.True(t, ok)
	assert.Len(t, id, 36)
}

func TestParse_YAML(t *testing.T) {
	cleanEnv(t)

	m, err := token.New(token.WithSecretString("s3cret"))
	require.NoError(t, err)
	tok, err := m.MakeToken(token.Claims{"user": "alice", "salt": "abc123", "expires": 4102444800.0})
	require.NoError(t, err)

	res := invoke(t, "", "parse", "--secret", "s3cret", "-o", "yaml", tok)
	require.Equal(t, exitOK, res.code, res.stderr)

	var claims map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &claims))
	assert.Equal(t, "alice", claims["user"])
	assert.Equal(t, "abc123", claims["salt"])
	assert.Contains(t, res.stdout, "user: alice")

	res = invoke(t, "", "parse", "--secret", "s3cret", "-o", "toml", tok)
	assert.Equal(t, exitUsage, res.code)
}

func TestParse_Stdin(t *testing.T) {
	cleanEnv(t)

	m, err := token.New(token.WithSecretString("s3cret"))
	require.NoError(t, err)
	tok, err := m.MakeToken(token.Claims{"via": "stdin"})
	require.NoError(t, err)

	res := invoke(t, tok+"\n", "parse", "--secret", "s3cret", "-")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"via": "stdin"`)
}

func TestParse_Rejections(t *testing.T) {
	cleanEnv(t)

	m, err := token.New(token.WithSecretString("s3cret"))
	require.NoError(t, err)
	tok, err := m.MakeToken(token.Claims{"expires": 1000.0})
	require.NoError(t, err)

	res := invoke(t, "", "parse", "--secret", "s3cret", "--now", "999.5", tok)
	require.Equal(t, exitOK, res.code, res.stderr)

	res = invoke(t, "", "parse", "--secret", "s3cret", "--now", "1000", tok)
	assert.Equal(t, exitInvalidToken, res.code)
	assert.Contains(t, res.stderr, "kind=expired")
	assert.NotContains(t, res.stderr, tok)

	res = invoke(t, "", "parse", "--secret", "other", tok)
	assert.Equal(t, exitInvalidToken, res.code)
	assert.Contains(t, res.stderr, "kind=invalid_signature")

	res = invoke(t, "", "parse", "--secret", "s3cret", "***")
	assert.Equal(t, exitInvalidToken, res.code)
	assert.Contains(t, res.stderr, "kind=malformed")
}

func TestEnvFileAndRotation(t *testing.T) {
	cleanEnv(t)

	old, err := token.New(token.WithSecretString("retired"), token.WithAlgorithm(hashes.SHA1))
	require.NoError(t, err)
	tok, err := old.MakeToken(token.Claims{"gen": "old"})
	require.NoError(t, err)

	t.Setenv("TOKEN_SECRETS", "retired")
	res := invoke(t, "", "parse", "--env-file", "testdata/tokenctl.env", "--log-level", "debug", tok)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"gen": "old"`)
	assert.Contains(t, res.stderr, "candidate=1")
	assert.Contains(t, res.stderr, "algorithm=sha1")
}

func TestUsageErrors(t *testing.T) {
	cleanEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no subcommand", nil},
		{"unknown subcommand", []string{"frobnicate"}},
		{"bad claim", []string{"mint", "--claim", "novalue"}},
		{"bad claims json", []string{"mint", "--claims-json", "[1]"}},
		{"trailing claims json", []string{"mint", "--claims-json", `{"a":1} {"b":2}`}},
		{"stray mint argument", []string{"mint", "extra"}},
		{"missing token", []string{"parse"}},
		{"unknown flag", []string{"derive", "--bogus", "x"}},
		{"bad log level", []string{"parse", "--log-level", "loud", "tok"}},
		{"small keygen", []string{"keygen", "--size", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := invoke(t, "", tt.args...)
			assert.Equal(t, exitUsage, res.code, res.stderr)
		})
	}
}

func TestBadHash(t *testing.T) {
	cleanEnv(t)

	res := invoke(t, "", "mint", "--secret", "s", "--hash", "whirlpool")
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "unsupported algorithm")
}

func TestHelp(t *testing.T) {
	res := invoke(t, "", "help")
	assert.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stdout, "Subcommands:")

	res = invoke(t, "", "mint", "--help")
	assert.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stderr, "--claim")
}

func TestKeygen(t *testing.T) {
	res := invoke(t, "", "keygen", "--size", "48")
	require.Equal(t, exitOK, res.code, res.stderr)

	b, err := token.DecodeBytes(strings.TrimSpace(res.stdout))
	require.NoError(t, err)
	assert.Len(t, b, 48)
}

func TestMint_ZeroTimeout(t *testing.T) {
	cleanEnv(t)

	res := invoke(t, "", "mint", "--secret", "s3cret", "--timeout", "0")
	require.Equal(t, exitOK, res.code, res.stderr)
	tok := strings.TrimSpace(res.stdout)

	res = invoke(t, "", "parse", "--secret", "s3cret", tok)
	assert.Equal(t, exitInvalidToken, res.code)
	assert.Contains(t, res.stderr, "kind=expired")
}

func TestMintParse_LargeIntegers(t *testing.T) {
	cleanEnv(t)

	res := invoke(t, "", "mint", "--secret", "s3cret", "--claims-json", `{"uid":9007199254740993,"ratio":0.5}`)
	require.Equal(t, exitOK, res.code, res.stderr)
	tok := strings.TrimSpace(res.stdout)

	claims, err := token.ParseToken(tok, token.WithSecretString("s3cret"))
	require.NoError(t, err)
	uid, ok := claims.Int64("uid")
	require.True(t, ok)
	assert.Equal(t, int64(9007199254740993), uid)

	res = invoke(t, "", "parse", "--secret", "s3cret", tok)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"uid": 9007199254740993`)

	res = invoke(t, "", "parse", "--secret", "s3cret", "-o", "yaml", tok)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "uid: 9007199254740993\n")
	assert.Contains(t, res.stdout, "ratio: 0.5\n")
}
