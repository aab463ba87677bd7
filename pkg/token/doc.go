// Package token issues and verifies compact, self-contained authentication tokens.
//
// A token carries a JSON object of claims plus two reserved claims, a random
// "salt" and an "expires" Unix timestamp, followed by an HMAC over the JSON
// bytes. Only holders of the master secret can mint or verify tokens. Each
// token also has a derived secret, computed with HKDF from the master secret,
// the token's salt and the exact token text, which a client can use as a
// session key for request signing.
//
// Token format: base64url(json(claims) || hmac(signingKey, json(claims)))
//
// The signing key is HKDF(master, no salt, SigningInfo) and is computed once
// per Manager. The signature length equals the digest size of the configured
// hash, so payload and signature are split at a fixed offset.
//
// # Usage
//
//	import "github.com/dmitrymomot/tokenlib/pkg/token"
//
//	m, err := token.New(
//	    token.WithSecretString("master-secret"),
//	    token.WithTimeout(10*time.Minute),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tok, err := m.MakeToken(token.Claims{"uid": "42"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	claims, err := m.ParseToken(tok)
//	if err != nil {
//	    // reject the request
//	}
//	sessionKey, _ := m.DerivedSecret(tok)
//
// A Manager is immutable and safe for concurrent use. Without WithSecret it
// uses a random secret generated once per process, so the package-level
// MakeToken and ParseToken helpers interoperate within one process only.
//
// For secret rollover, Keyring accepts tokens signed by any of an ordered list
// of secrets and mints with the first.
//
// # Error Handling
//
// Validation failures all match ErrInvalidToken and one of:
//
//   - ErrMalformedToken: not base64, too short, or not a JSON object once authenticated.
//   - ErrInvalidSignature: the HMAC does not match.
//   - ErrExpiredToken: expires is at or before the verification time.
//
// ParseToken verifies the signature before the payload is parsed, so
// unauthenticated bytes never reach the JSON decoder. Manager.DerivedSecret
// only reads the salt and does not authenticate the token; Keyring.DerivedSecret
// does. Classify flattens an error to a Kind.
// Configuration errors such as hashes.ErrUnsupportedAlgorithm are reported by
// New and are not validation errors.
package token
