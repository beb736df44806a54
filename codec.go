package jwtkit

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// segmentEncoding is unpadded base64url in strict mode. Strict decoding
// rejects non-zero trailing bits, so two distinct segment strings can never
// decode to the same bytes and slip past tamper detection.
var segmentEncoding = base64.RawURLEncoding.Strict()

// encodeSegment serializes v to JSON and base64url-encodes it without padding,
// as required by RFC 7515 for the compact serialization.
func encodeSegment(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return segmentEncoding.EncodeToString(data), nil
}

// encodeRawSegment base64url-encodes raw bytes without padding. Used for the
// signature segment, which is not JSON.
func encodeRawSegment(data []byte) string {
	return segmentEncoding.EncodeToString(data)
}

// decodeSegment reverses encodeSegment into v. Invalid base64url reports
// ErrMalformedEncoding; invalid JSON reports ErrMalformedPayload. Errors the
// target's UnmarshalJSON already typed (ErrMissingClaim, ErrMalformedPayload)
// pass through untouched.
func decodeSegment(seg string, v any) error {
	data, err := segmentEncoding.DecodeString(seg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		if errors.Is(err, ErrMissingClaim) || errors.Is(err, ErrMalformedPayload) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

// decodeRawSegment decodes a base64url segment without interpreting it.
func decodeRawSegment(seg string) ([]byte, error) {
	data, err := segmentEncoding.DecodeString(seg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return data, nil
}
