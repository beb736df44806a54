package jwtkit

import "errors"

var (
	ErrMalformedToken       = errors.New("jwt: malformed token")
	ErrMalformedEncoding    = errors.New("jwt: malformed segment encoding")
	ErrMalformedPayload     = errors.New("jwt: malformed payload")
	ErrMissingClaim         = errors.New("jwt: missing required claim")
	ErrUnsupportedAlgorithm = errors.New("jwt: unsupported signing algorithm")
	ErrInvalidSignature     = errors.New("jwt: invalid signature")
	ErrTokenExpired         = errors.New("jwt: token is expired")
	ErrInvalidSubject       = errors.New("jwt: invalid subject")
	ErrMissingSigningKey    = errors.New("jwt: missing signing key")
)
