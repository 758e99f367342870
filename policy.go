package hstoken

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// StandardClaimsPolicy is a ready-made ClaimsPolicy covering the registered
// claims. On encode it injects only the claims it is configured for and
// returns nil for the rest, so unconfigured claims are omitted entirely. On
// decode it validates whatever is present and enforces RequiredClaims.
//
// Fields:
//   - Duration: validity window; exp = now + Duration is injected when > 0
//   - NotBefore: inject nbf = now when true
//   - Issuer: injected as iss and enforced on validation when non-empty
//   - Audience: injected as aud and enforced on validation when non-empty
//   - GenerateID: inject a random UUID as jti when true
//   - RequiredClaims: claims that must be present on validation
//   - Leeway: clock-skew allowance applied to exp, nbf and iat
//   - Clock: time source; nil means time.Now
type StandardClaimsPolicy struct {
	Duration       time.Duration
	NotBefore      bool
	Issuer         string
	Audience       string
	GenerateID     bool
	RequiredClaims []string
	Leeway         time.Duration
	Clock          func() time.Time
}

func (p *StandardClaimsPolicy) now() time.Time {
	if p.Clock != nil {
		return p.Clock()
	}
	return time.Now()
}

// Claim produces values for configured claims. iat is always injected; every
// other claim is injected only when its configuration field is set.
func (p *StandardClaimsPolicy) Claim(name string, payload map[string]any) (any, error) {
	switch name {
	case ClaimExpiresAt:
		if p.Duration > 0 {
			return p.now().Add(p.Duration).Unix(), nil
		}
	case ClaimNotBefore:
		if p.NotBefore {
			return p.now().Unix(), nil
		}
	case ClaimIssuedAt:
		return p.now().Unix(), nil
	case ClaimAudience:
		if p.Audience != "" {
			return p.Audience, nil
		}
	case ClaimIssuer:
		if p.Issuer != "" {
			return p.Issuer, nil
		}
	case ClaimID:
		if p.GenerateID {
			return uuid.NewString(), nil
		}
	}
	return nil, nil
}

// ValidateClaim checks a single decoded claim. Absent claims pass unless
// listed in RequiredClaims; present claims must have the right type and
// satisfy the time and equality rules.
func (p *StandardClaimsPolicy) ValidateClaim(name string, payload map[string]any) error {
	value, ok := payload[name]
	if !ok {
		if slices.Contains(p.RequiredClaims, name) {
			return &ClaimError{Name: name, Reason: "required claim is missing"}
		}
		return nil
	}

	switch name {
	case ClaimExpiresAt:
		exp, err := numericDate(value)
		if err != nil {
			return &ClaimError{Name: name, Reason: err.Error()}
		}
		if p.now().After(exp.Add(p.Leeway)) {
			return &ClaimError{Name: name, Reason: "token has expired"}
		}
	case ClaimNotBefore:
		nbf, err := numericDate(value)
		if err != nil {
			return &ClaimError{Name: name, Reason: err.Error()}
		}
		if p.now().Add(p.Leeway).Before(nbf) {
			return &ClaimError{Name: name, Reason: "token is not valid yet"}
		}
	case ClaimIssuedAt:
		iat, err := numericDate(value)
		if err != nil {
			return &ClaimError{Name: name, Reason: err.Error()}
		}
		if iat.After(p.now().Add(p.Leeway)) {
			return &ClaimError{Name: name, Reason: "token issued in the future"}
		}
	case ClaimIssuer:
		iss, ok := value.(string)
		if !ok {
			return &ClaimError{Name: name, Reason: "not a string"}
		}
		if p.Issuer != "" && iss != p.Issuer {
			return &ClaimError{Name: name, Reason: fmt.Sprintf("unexpected issuer %q", iss)}
		}
	case ClaimAudience:
		aud, ok := value.(string)
		if !ok {
			return &ClaimError{Name: name, Reason: "not a string"}
		}
		if p.Audience != "" && aud != p.Audience {
			return &ClaimError{Name: name, Reason: fmt.Sprintf("unexpected audience %q", aud)}
		}
	case ClaimSubject, ClaimID:
		s, ok := value.(string)
		if !ok {
			return &ClaimError{Name: name, Reason: "not a string"}
		}
		if s == "" {
			return &ClaimError{Name: name, Reason: "empty"}
		}
	}

	return nil
}

// numericDate converts a decoded JSON claim value into a time. JSON numbers
// decode as float64, while locally injected values are int64.
func numericDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case float64:
		return time.Unix(int64(v), 0), nil
	case int64:
		return time.Unix(v, 0), nil
	case int:
		return time.Unix(int64(v), 0), nil
	default:
		return time.Time{}, fmt.Errorf("not a numeric date: %T", value)
	}
}

// interface guard
var _ ClaimsPolicy = (*StandardClaimsPolicy)(nil)
