package jwtkit

import (
	"crypto/hmac"
	"crypto/subtle"
)

// sign computes the HMAC of message with the given key and algorithm.
func sign(message, key []byte, alg Algorithm) ([]byte, error) {
	newHash, ok := alg.hashFunc()
	if !ok {
		return nil, ErrUnsupportedAlgorithm
	}
	mac := hmac.New(newHash, key)
	mac.Write(message)
	return mac.Sum(nil), nil
}

// verify recomputes the HMAC over message and compares it to signature in
// constant time, so timing never reveals how much of a forged signature
// matched.
func verify(message, signature, key []byte, alg Algorithm) error {
	expected, err := sign(message, key, alg)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(signature, expected) != 1 {
		return ErrInvalidSignature
	}
	return nil
}
