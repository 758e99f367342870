package hstoken

import (
	"context"
	"encoding/json"
	"fmt"
)

// TokenConfig is the capability set the token engine consumes. Every method
// is treated as a fallible external call: the engine propagates failures
// wrapped with the step that invoked them and never swallows one.
//
// Methods:
//   - SecretKey: returns the signing secret for the current call
//   - Algorithm: returns the trusted signing algorithm (never read from a token)
//   - EncodeJSON / DecodeJSON: the JSON capability used for header and payload
//   - Claim: optionally produces a value for a recognized claim on encode;
//     a nil value means the claim is omitted entirely
//   - ValidateClaim: checks one claim of a decoded payload
type TokenConfig interface {
	SecretKey(ctx context.Context) ([]byte, error)
	Algorithm() Algorithm
	EncodeJSON(v map[string]any) ([]byte, error)
	DecodeJSON(data []byte) (map[string]any, error)
	Claim(name string, payload map[string]any) (any, error)
	ValidateClaim(name string, payload map[string]any) error
}

// JSONCodec is the pluggable JSON capability. The zero configuration falls
// back to encoding/json.
type JSONCodec interface {
	EncodeJSON(v map[string]any) ([]byte, error)
	DecodeJSON(data []byte) (map[string]any, error)
}

// ClaimsPolicy produces and validates registered claims. The engine imposes
// no policy of its own; a nil policy means no injection and no validation.
type ClaimsPolicy interface {
	Claim(name string, payload map[string]any) (any, error)
	ValidateClaim(name string, payload map[string]any) error
}

// Config is the standard TokenConfig implementation: a plain struct wiring an
// algorithm to a secret source, with optional JSON codec and claims policy
// overrides.
//
// Fields:
//   - Alg: signing algorithm (HS256, HS384 or HS512)
//   - Secrets: where the signing secret comes from at call time
//   - Codec: JSON capability; nil selects encoding/json
//   - Claims: claim producer/validator pair; nil disables both
type Config struct {
	Alg     Algorithm
	Secrets SecretSource
	Codec   JSONCodec
	Claims  ClaimsPolicy
}

// NewConfig returns a Config signing with alg and a fixed in-memory secret.
func NewConfig(alg Algorithm, secret []byte) *Config {
	return &Config{
		Alg:     alg,
		Secrets: StaticSecret(secret),
	}
}

// DefaultConfig returns a ready-to-use HS256 configuration for the given
// secret, with the encoding/json codec and no claims policy.
func DefaultConfig(secret string) *Config {
	return NewConfig(HS256, []byte(secret))
}

func (c *Config) SecretKey(ctx context.Context) ([]byte, error) {
	if c.Secrets == nil {
		return nil, fmt.Errorf("no secret source configured")
	}
	return c.Secrets.SecretKey(ctx)
}

func (c *Config) Algorithm() Algorithm {
	return c.Alg
}

func (c *Config) EncodeJSON(v map[string]any) ([]byte, error) {
	return c.codec().EncodeJSON(v)
}

func (c *Config) DecodeJSON(data []byte) (map[string]any, error) {
	return c.codec().DecodeJSON(data)
}

func (c *Config) Claim(name string, payload map[string]any) (any, error) {
	if c.Claims == nil {
		return nil, nil
	}
	return c.Claims.Claim(name, payload)
}

func (c *Config) ValidateClaim(name string, payload map[string]any) error {
	if c.Claims == nil {
		return nil
	}
	return c.Claims.ValidateClaim(name, payload)
}

func (c *Config) codec() JSONCodec {
	if c.Codec != nil {
		return c.Codec
	}
	return stdJSONCodec{}
}

// stdJSONCodec is the encoding/json fallback used when no codec is injected.
type stdJSONCodec struct{}

func (stdJSONCodec) EncodeJSON(v map[string]any) ([]byte, error) {
	return json.Marshal(v)
}

func (stdJSONCodec) DecodeJSON(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// interface guard
var _ TokenConfig = (*Config)(nil)
