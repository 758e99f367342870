package hstoken

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Algorithm identifies the HMAC signing algorithm used for a token.
type Algorithm string

const (
	HS256 Algorithm = "HS256" // HMAC using SHA-256
	HS384 Algorithm = "HS384" // HMAC using SHA-384
	HS512 Algorithm = "HS512" // HMAC using SHA-512
)

// SupportedAlgorithms lists every algorithm this package can sign and verify with.
var SupportedAlgorithms = []Algorithm{HS256, HS384, HS512}

// Valid reports whether the algorithm is one of the supported HMAC algorithms.
func (a Algorithm) Valid() bool {
	switch a {
	case HS256, HS384, HS512:
		return true
	}
	return false
}

func (a Algorithm) String() string {
	return string(a)
}

// hashFunc returns the hash constructor backing the algorithm.
func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case HS256:
		return sha256.New, nil
	case HS384:
		return sha512.New384, nil
	case HS512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, a)
	}
}
