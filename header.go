package jwtkit

// TokenType is the value of the "typ" header stamped into issued tokens,
// per RFC 7519.
const TokenType = "JWT"

// Header is the JOSE header of a token as defined in RFC 7515. This package
// emits typ, alg and, when configured, kid; the remaining key-reference
// fields are carried so that headers produced elsewhere survive a decode
// intact. Field order is fixed by the struct so encoded headers, and
// therefore signatures, are reproducible.
//
// Decoding accepts any permutation of these fields. Only the algorithm is
// load-bearing: an absent or unrecognized alg fails validation with
// ErrUnsupportedAlgorithm.
type Header struct {
	Type               string         `json:"typ,omitempty"`
	Algorithm          Algorithm      `json:"alg"`
	ContentType        string         `json:"cty,omitempty"`
	JWKSetURL          string         `json:"jku,omitempty"`
	JSONWebKey         map[string]any `json:"jwk,omitempty"`
	KeyID              string         `json:"kid,omitempty"`
	X509URL            string         `json:"x5u,omitempty"`
	X509CertChain      []string       `json:"x5c,omitempty"`
	X509Thumbprint     string         `json:"x5t,omitempty"`
	X509ThumbprintS256 string         `json:"x5t#S256,omitempty"`
}

func newHeader(alg Algorithm, kid string) Header {
	return Header{
		Type:      TokenType,
		Algorithm: alg,
		KeyID:     kid,
	}
}
