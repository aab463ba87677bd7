// Package hashes defines the closed set of hash functions usable for token
// signing and key derivation.
//
// Algorithms are named values rather than arbitrary constructors, so an
// unknown name is rejected once, at configuration time, instead of surfacing
// later as a runtime failure. Each Algorithm knows its digest size and how to
// build a fresh hash.Hash suitable for crypto/hmac.
//
// # Usage
//
//	import "github.com/dmitrymomot/tokenlib/pkg/hashes"
//
//	alg, err := hashes.Parse("SHA-256")
//	if err != nil {
//	    // errors.Is(err, hashes.ErrUnsupportedAlgorithm)
//	}
//	mac := hmac.New(alg.Func(), key)
//	_ = alg.Size() // 32
//
// SHA-3 and BLAKE2b are provided by golang.org/x/crypto. MD5 and SHA-1 are
// kept for interoperability with tokens minted by older deployments.
package hashes
