package hashes

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies one of the supported hash functions by its canonical name.
type Algorithm string

const (
	MD5        Algorithm = "md5"
	SHA1       Algorithm = "sha1"
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA512_256 Algorithm = "sha512-256"
	SHA3_256   Algorithm = "sha3-256"
	SHA3_512   Algorithm = "sha3-512"
	BLAKE2b256 Algorithm = "blake2b-256"
	BLAKE2b512 Algorithm = "blake2b-512"

	// Default is used by token managers when no algorithm is configured.
	Default = SHA256
)

type entry struct {
	size int
	new  func() hash.Hash
}

var registry = map[Algorithm]entry{
	MD5:        {md5.Size, md5.New},
	SHA1:       {sha1.Size, sha1.New},
	SHA224:     {sha256.Size224, sha256.New224},
	SHA256:     {sha256.Size, sha256.New},
	SHA384:     {sha512.Size384, sha512.New384},
	SHA512:     {sha512.Size, sha512.New},
	SHA512_256: {sha512.Size256, sha512.New512_256},
	SHA3_256:   {32, sha3.New256},
	SHA3_512:   {64, sha3.New512},
	BLAKE2b256: {blake2b.Size256, unkeyedBlake2b(blake2b.New256)},
	BLAKE2b512: {blake2b.Size, unkeyedBlake2b(blake2b.New512)},
}

// unkeyedBlake2b adapts the keyed blake2b constructors. With a nil key they never fail.
func unkeyedBlake2b(fn func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			panic("hashes: blake2b: " + err.Error())
		}
		return h
	}
}

// Parse resolves a user supplied name such as "sha256", "SHA-256" or "sha3_256".
// Names are matched case-insensitively with '-', '_' and '/' ignored.
func Parse(name string) (Algorithm, error) {
	key := normalize(name)
	if key == "" {
		return "", ErrEmptyName
	}
	for alg := range registry {
		if normalize(string(alg)) == key {
			return alg, nil
		}
	}
	return "", newUnsupported(name)
}

// MustParse is like Parse but panics on unknown names.
func MustParse(name string) Algorithm {
	alg, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return alg
}

// Supported returns all canonical algorithm names, strongest-first within each family.
func Supported() []Algorithm {
	return []Algorithm{
		SHA256, SHA384, SHA512, SHA512_256, SHA224,
		SHA3_256, SHA3_512,
		BLAKE2b256, BLAKE2b512,
		SHA1, MD5,
	}
}

// Available reports whether a is a member of the supported set.
func (a Algorithm) Available() bool {
	_, ok := registry[a]
	return ok
}

// New returns a fresh hash.Hash. It panics for algorithms outside the supported set,
// so values should come from the constants or from Parse.
func (a Algorithm) New() hash.Hash {
	s, ok := registry[a]
	if !ok {
		panic(newUnsupported(string(a)))
	}
	return s.new()
}

// Func returns the constructor in the shape expected by crypto/hmac and hkdf.
func (a Algorithm) Func() func() hash.Hash {
	s, ok := registry[a]
	if !ok {
		panic(newUnsupported(string(a)))
	}
	return s.new
}

// Size returns the digest size in bytes, or 0 for unsupported algorithms.
func (a Algorithm) Size() int {
	return registry[a].size
}

func (a Algorithm) String() string {
	return string(a)
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '/', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}
