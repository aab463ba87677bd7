package hkdf

import "errors"

var (
	ErrInvalidLength    = errors.New("hkdf: negative output length")
	ErrOutputTooLong    = errors.New("hkdf: output length exceeds 255 blocks")
	ErrDerivationFailed = errors.New("hkdf: key derivation failed")
)
