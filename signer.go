package hstoken

import (
	"crypto/hmac"
)

// Sign computes the HMAC of message keyed by secret, using the hash function
// selected by alg. Returns ErrUnsupportedAlgorithm for anything outside
// HS256/HS384/HS512.
func Sign(alg Algorithm, secret, message []byte) ([]byte, error) {
	newHash, err := alg.hashFunc()
	if err != nil {
		return nil, err
	}
	mac := hmac.New(newHash, secret)
	mac.Write(message)
	return mac.Sum(nil), nil
}

// Verify recomputes the HMAC of message and compares it against signature in
// constant time. A length mismatch also goes through hmac.Equal rather than
// an early return, so verification time does not depend on how much of the
// signature matches.
func Verify(alg Algorithm, secret, message, signature []byte) (bool, error) {
	expected, err := Sign(alg, secret, message)
	if err != nil {
		return false, err
	}
	return hmac.Equal(expected, signature), nil
}
