package hstoken

import (
	"errors"
	"fmt"
)

// Registered claim names, in the fixed order the claims pipeline visits them.
const (
	ClaimExpiresAt = "exp"
	ClaimNotBefore = "nbf"
	ClaimIssuedAt  = "iat"
	ClaimAudience  = "aud"
	ClaimIssuer    = "iss"
	ClaimSubject   = "sub"
	ClaimID        = "jti"
)

// RegisteredClaims is the ordered set of claim names the pipeline recognizes.
// Injection and validation iterate in exactly this order, so a producer that
// inspects the payload built so far sees deterministic intermediate state.
var RegisteredClaims = []string{
	ClaimExpiresAt,
	ClaimNotBefore,
	ClaimIssuedAt,
	ClaimAudience,
	ClaimIssuer,
	ClaimSubject,
	ClaimID,
}

// ClaimProducer optionally supplies a value for a recognized claim during
// encoding. Returning a nil value means the claim is omitted entirely, which
// is distinct from returning a value that serializes to JSON null.
type ClaimProducer func(name string, payload map[string]any) (any, error)

// ClaimValidator checks one claim of a decoded payload. A nil return means
// the claim is acceptable; any error is surfaced as a *ClaimError.
type ClaimValidator func(name string, payload map[string]any) error

// SkipList is a set of claim names excluded from validation for a single
// decode call. It never affects signature verification.
type SkipList map[string]struct{}

// NewSkipList builds a SkipList from the given claim names.
func NewSkipList(names ...string) SkipList {
	s := make(SkipList, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is on the skip list.
func (s SkipList) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// InjectClaims returns a copy of payload with producer-supplied values added
// for every name in names that the caller did not already set. Caller-supplied
// values are never overwritten, and a nil produced value omits the claim.
// The input map is not mutated.
func InjectClaims(payload map[string]any, names []string, produce ClaimProducer) (map[string]any, error) {
	out := make(map[string]any, len(payload)+len(names))
	for k, v := range payload {
		out[k] = v
	}

	if produce == nil {
		return out, nil
	}

	for _, name := range names {
		if _, ok := out[name]; ok {
			continue
		}
		value, err := safeProduce(produce, name, out)
		if err != nil {
			return nil, err
		}
		if value == nil {
			continue
		}
		out[name] = value
	}

	return out, nil
}

// ValidateClaims runs the validator over every name in names that is not on
// the skip list, in order, stopping at the first failure. The returned error
// is always a *ClaimError matching ErrClaimInvalid.
func ValidateClaims(payload map[string]any, names []string, skip SkipList, validate ClaimValidator) error {
	if validate == nil {
		return nil
	}

	for _, name := range names {
		if skip.Has(name) {
			continue
		}
		if err := safeValidate(validate, name, payload); err != nil {
			return err
		}
	}

	return nil
}

// safeProduce invokes the producer, converting a panic into an error so a
// misbehaving capability cannot crash the engine.
func safeProduce(produce ClaimProducer, name string, payload map[string]any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("claim producer panicked for %q: %v", name, r)
		}
	}()
	return produce(name, payload)
}

// safeValidate invokes the validator, normalizing every failure, including a
// panic, into a *ClaimError carrying the claim name.
func safeValidate(validate ClaimValidator, name string, payload map[string]any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ClaimError{Name: name, Reason: fmt.Sprintf("validator panicked: %v", r)}
		}
	}()

	verr := validate(name, payload)
	if verr == nil {
		return nil
	}
	var claimErr *ClaimError
	if errors.As(verr, &claimErr) {
		return claimErr
	}
	return &ClaimError{Name: name, Reason: verr.Error()}
}
