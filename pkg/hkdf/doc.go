// Package hkdf implements the HMAC-based extract-and-expand key derivation
// function from RFC 5869 over the algorithms defined in package hashes.
//
// The heavy lifting is done by golang.org/x/crypto/hkdf; this package adds the
// hashes.Algorithm binding, explicit length validation and byte-slice results
// instead of an io.Reader.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/tokenlib/pkg/hashes"
//	    "github.com/dmitrymomot/tokenlib/pkg/hkdf"
//	)
//
//	key, err := hkdf.Derive(hashes.SHA256, master, salt, []byte("context"), 32)
//
// # Error Handling
//
// Output lengths above 255 times the digest size return ErrOutputTooLong and
// negative lengths return ErrInvalidLength. An algorithm outside the hashes
// set makes Extract, Expand and Derive return hashes.ErrUnsupportedAlgorithm.
// All of these are checked before any HMAC work is done.
package hkdf
