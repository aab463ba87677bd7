package token

import (
	"encoding/json"
	"maps"
	"math"
	"time"
)

// Reserved claim keys injected by MakeToken when absent.
const (
	SaltKey    = "salt"
	ExpiresKey = "expires"
)

// Claims is the JSON object embedded in a token. Parsed claims hold numbers as
// json.Number, so integers beyond 2^53 come back exactly; objects are
// map[string]any and arrays []any.
type Claims map[string]any

// Clone returns a shallow copy.
func (c Claims) Clone() Claims {
	out := make(Claims, len(c)+2)
	maps.Copy(out, c)
	return out
}

// Salt returns the salt claim if it is a string.
func (c Claims) Salt() (string, bool) {
	s, ok := c[SaltKey].(string)
	return s, ok
}

// Int64 returns an integer claim. Integral float values are accepted too.
func (c Claims) Int64(key string) (int64, bool) {
	switch n := c[key].(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// ExpiresUnix returns the expiry as fractional Unix seconds.
func (c Claims) ExpiresUnix() (float64, bool) {
	var v float64
	switch n := c[ExpiresKey].(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Expires returns the expiry as a time.Time.
func (c Claims) Expires() (time.Time, bool) {
	v, ok := c.ExpiresUnix()
	if !ok {
		return time.Time{}, false
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))), true
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
