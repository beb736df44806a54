package jwtkit

import (
	"fmt"
	"strings"
	"time"
)

// Option configures a Service.
type Option func(*Service)

// WithAlgorithm sets the algorithm used to sign issued tokens. Defaults to
// HS256. It also becomes the validation allow-list unless
// WithAllowedAlgorithms is supplied.
func WithAlgorithm(alg Algorithm) Option {
	return func(s *Service) { s.algorithm = alg }
}

// WithAllowedAlgorithms sets the algorithms accepted during validation.
// Tokens whose header names any other algorithm are rejected with
// ErrUnsupportedAlgorithm before their signature or claims are trusted.
func WithAllowedAlgorithms(algs ...Algorithm) Option {
	return func(s *Service) { s.allowed = algs }
}

// WithKeyID stamps the given kid into the header of issued tokens.
func WithKeyID(kid string) Option {
	return func(s *Service) { s.keyID = kid }
}

// Service issues and validates HMAC-signed tokens. The signing key is kept in
// memory only and is never written into a token or an error. A Service holds
// no per-call state and is safe for concurrent use.
type Service struct {
	signingKey []byte
	algorithm  Algorithm
	allowed    []Algorithm
	keyID      string
	now        func() time.Time
}

// New creates a Service with the provided signing key. The key should be at
// least as long as the hash output of the chosen algorithm (32 bytes for
// HS256).
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		algorithm:  HS256,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if !s.algorithm.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, s.algorithm)
	}
	if len(s.allowed) == 0 {
		s.allowed = []Algorithm{s.algorithm}
	}
	for _, alg := range s.allowed {
		if !alg.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
		}
	}

	return s, nil
}

// NewFromString creates a Service from a string signing key. Convenience
// wrapper around New for string-based configuration.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	if signingKey == "" {
		return nil, ErrMissingSigningKey
	}
	return New([]byte(signingKey), opts...)
}

// Issue signs the claims and returns the compact three-segment token
// base64url(header).base64url(payload).base64url(signature).
func (s *Service) Issue(claims Claims) (string, error) {
	if claims.PID == "" {
		return "", ErrInvalidSubject
	}

	headerSeg, err := encodeSegment(newHeader(s.algorithm, s.keyID))
	if err != nil {
		return "", err
	}
	payloadSeg, err := encodeSegment(claims)
	if err != nil {
		return "", err
	}

	signingInput := headerSeg + "." + payloadSeg
	signature, err := sign([]byte(signingInput), s.signingKey, s.algorithm)
	if err != nil {
		return "", err
	}

	return signingInput + "." + encodeRawSegment(signature), nil
}

// IssueFor builds claims for the subject and expiration and issues a token in
// one step.
func (s *Service) IssueFor(pid string, exp time.Time, extra map[string]any) (string, error) {
	claims, err := NewClaims(pid, exp, extra)
	if err != nil {
		return "", err
	}
	return s.Issue(claims)
}

// Validate checks a compact token and returns its claims. The checks run in a
// fixed order: segment count, header algorithm against the allow-list,
// signature over the first two segments, payload decoding, expiration. The
// payload is not decoded until the signature has verified, so tampered claims
// are never inspected.
func (s *Service) Validate(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, ErrMalformedToken
	}

	var header Header
	if err := decodeSegment(parts[0], &header); err != nil {
		return Claims{}, err
	}
	if !s.algorithmAllowed(header.Algorithm) {
		return Claims{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, header.Algorithm)
	}

	signature, err := decodeRawSegment(parts[2])
	if err != nil {
		return Claims{}, err
	}
	signingInput := parts[0] + "." + parts[1]
	if err := verify([]byte(signingInput), signature, s.signingKey, header.Algorithm); err != nil {
		return Claims{}, err
	}

	var claims Claims
	if err := decodeSegment(parts[1], &claims); err != nil {
		return Claims{}, err
	}
	if claims.expired(s.now()) {
		return Claims{}, ErrTokenExpired
	}

	return claims, nil
}

func (s *Service) algorithmAllowed(alg Algorithm) bool {
	for _, a := range s.allowed {
		if a == alg {
			return true
		}
	}
	return false
}
