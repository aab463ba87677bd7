package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
)

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Algorithm records a hash algorithm name.
func Algorithm(name string) slog.Attr {
	return slog.String("algorithm", name)
}

// Candidate records the index of the secret that verified a token.
func Candidate(i int) slog.Attr {
	return slog.Int("candidate", i)
}

// Kind records a token validation outcome such as "expired".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Fingerprint records a short, non-reversible identifier for a token so log
// lines can be correlated without the token itself appearing in logs.
func Fingerprint(token string) slog.Attr {
	if token == "" {
		return slog.Attr{}
	}
	sum := sha256.Sum256([]byte(token))
	return slog.String("fingerprint", hex.EncodeToString(sum[:6]))
}
