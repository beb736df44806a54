// Package jwtkit issues and validates JSON Web Tokens (JWT) signed with the
// symmetric HMAC family (HS256, HS384, HS512).
//
// Tokens carry a fixed subject identifier ("pid") and expiration ("exp")
// alongside an open map of application claims that may nest arbitrarily.
// A high-level Service type wraps signing and verification; Claims models the
// payload.
//
// # Architecture
//
//   • Service – issues and validates tokens (service.go).
//   • Claims – fixed pid/exp fields merged with an open nested claim map
//     (claims.go).
//   • Header – JOSE header model with optional key-reference fields
//     (header.go).
//   • codec.go – base64url (unpadded) + JSON segment encoding.
//   • signer.go – HMAC signing and constant-time verification.
//   • errors.go – sentinel error values returned by the package.
//   • context.go – helpers for carrying a token and its claims in a
//     context.Context.
//
// # Usage
//
//	import "github.com/zeinix-zz/jwtkit"
//
//	svc, err := jwtkit.NewFromString("super-secret-key-at-least-32-bytes")
//	if err != nil {
//	    // handle error
//	}
//
//	token, err := svc.IssueFor("user123", time.Now().Add(time.Hour), map[string]any{
//	    "role": "admin",
//	})
//
//	claims, err := svc.Validate(token)
//	if err != nil {
//	    // rejected: expired, tampered, wrong algorithm, ...
//	}
//	_ = claims.PID
//
// # Security
//
// Validation order is fixed: segment count, algorithm allow-list, signature,
// payload, expiration. The signature is verified before the payload is
// decoded, and the algorithm named by the token header must be on the
// verifier's allow-list, closing the algorithm-confusion class of attacks.
// Signature comparison is constant time. Signing keys stay in memory and are
// never logged or embedded in tokens.
//
// # Error Handling
//
// Failures are sentinel errors such as ErrTokenExpired or
// ErrInvalidSignature, possibly wrapped with context, and can be matched with
// errors.Is.
//
// # Performance Considerations
//
// The package uses only the Go standard library, avoiding external
// dependencies and allocations where possible. All operations are stateless
// and safe for concurrent use.
package jwtkit
