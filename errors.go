package hstoken

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedToken indicates the input did not split into exactly three segments.
	ErrMalformedToken = errors.New("token is malformed")

	// ErrMalformedBase64 indicates a token segment is not valid unpadded base64url.
	ErrMalformedBase64 = errors.New("segment is not valid base64url")

	// ErrUnsupportedAlgorithm indicates an algorithm outside HS256/HS384/HS512.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

	// ErrSerialization indicates the external JSON capability failed to encode.
	ErrSerialization = errors.New("JSON serialization failed")

	// ErrDeserialization indicates the external JSON capability failed to decode.
	ErrDeserialization = errors.New("JSON deserialization failed")

	// ErrSignatureInvalid indicates the HMAC signature did not verify.
	ErrSignatureInvalid = errors.New("signature is invalid")

	// ErrClaimInvalid is the class matched by errors.Is for any claim
	// validation failure. The concrete error is always a *ClaimError.
	ErrClaimInvalid = errors.New("claim is invalid")
)

// ClaimError reports a single failed claim validation. Validation is
// fail-fast, so a decode surfaces at most one ClaimError.
type ClaimError struct {
	Name   string // claim name, e.g. "exp"
	Reason string // human-readable reason
}

func (e *ClaimError) Error() string {
	return fmt.Sprintf("claim %q: %s", e.Name, e.Reason)
}

func (e *ClaimError) Is(target error) bool {
	return target == ErrClaimInvalid
}
