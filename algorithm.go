package jwtkit

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Algorithm identifies an HMAC signing algorithm by its JOSE "alg" name.
// Only the symmetric HMAC-SHA2 variants are supported; anything else is
// rejected with ErrUnsupportedAlgorithm wherever an Algorithm is consumed.
type Algorithm string

const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
)

// Valid reports whether the algorithm is one of the supported HMAC variants.
func (a Algorithm) Valid() bool {
	_, ok := a.hashFunc()
	return ok
}

// hashFunc maps the algorithm to its hash constructor. The switch is over the
// declared constants only, so attacker-supplied header values cannot steer
// dispatch anywhere unexpected.
func (a Algorithm) hashFunc() (func() hash.Hash, bool) {
	switch a {
	case HS256:
		return sha256.New, true
	case HS384:
		return sha512.New384, true
	case HS512:
		return sha512.New, true
	default:
		return nil, false
	}
}
