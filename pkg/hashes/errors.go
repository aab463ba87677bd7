package hashes

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedAlgorithm = errors.New("hashes: unsupported algorithm")
	ErrEmptyName            = errors.New("hashes: empty algorithm name")
)

func newUnsupported(name string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}
