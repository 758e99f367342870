package hstoken

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeSegment returns the unpadded base64url encoding of b, as used for
// every JWT segment (RFC 7515 section 2).
func EncodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeSegment decodes an unpadded base64url token segment. The input is
// re-padded to a multiple of four characters before strict decoding; invalid
// characters or an impossible length yield ErrMalformedBase64.
func DecodeSegment(s string) ([]byte, error) {
	if n := len(s) % 4; n != 0 {
		s += strings.Repeat("=", 4-n)
	}
	b, err := base64.URLEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBase64, err)
	}
	return b, nil
}
