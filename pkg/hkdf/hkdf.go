package hkdf

import (
	"errors"
	"io"

	xhkdf "golang.org/x/crypto/hkdf"

	"github.com/dmitrymomot/tokenlib/pkg/hashes"
)

// MaxBlocks is the largest number of HMAC blocks Expand may produce,
// bounded by the single-byte block counter.
const MaxBlocks = 255

// Extract condenses input keying material into a pseudorandom key of alg.Size() bytes.
// A nil or empty salt behaves as a zero-filled salt of digest length.
func Extract(alg hashes.Algorithm, salt, ikm []byte) ([]byte, error) {
	if !alg.Available() {
		return nil, hashes.ErrUnsupportedAlgorithm
	}
	return xhkdf.Extract(alg.Func(), ikm, salt), nil
}

// Expand stretches prk into exactly length bytes of output bound to info.
func Expand(alg hashes.Algorithm, prk, info []byte, length int) ([]byte, error) {
	if err := checkLength(alg, length); err != nil {
		return nil, err
	}
	okm := make([]byte, length)
	if _, err := io.ReadFull(xhkdf.Expand(alg.Func(), prk, info), okm); err != nil {
		return nil, errors.Join(ErrDerivationFailed, err)
	}
	return okm, nil
}

// Derive runs Extract followed by Expand.
func Derive(alg hashes.Algorithm, secret, salt, info []byte, length int) ([]byte, error) {
	if err := checkLength(alg, length); err != nil {
		return nil, err
	}
	prk, err := Extract(alg, salt, secret)
	if err != nil {
		return nil, err
	}
	return Expand(alg, prk, info, length)
}

// MaxLength returns the longest output Expand can produce for alg.
func MaxLength(alg hashes.Algorithm) int {
	return MaxBlocks * alg.Size()
}

func checkLength(alg hashes.Algorithm, length int) error {
	if !alg.Available() {
		return hashes.ErrUnsupportedAlgorithm
	}
	if length < 0 {
		return ErrInvalidLength
	}
	if length > MaxLength(alg) {
		return ErrOutputTooLong
	}
	return nil
}
