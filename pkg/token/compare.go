package token

import "crypto/subtle"

// BytesDiffer reports whether a and b differ. Inputs of different length
// differ immediately; otherwise every byte is examined regardless of where
// the first mismatch is, so the running time leaks nothing about it.
func BytesDiffer(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) != 1
}

// StringsDiffer is BytesDiffer for strings.
func StringsDiffer(a, b string) bool {
	return BytesDiffer([]byte(a), []byte(b))
}
