package hstoken

import (
	"context"
	"fmt"
	"strings"
)

const headerType = "JWT"

// Engine orchestrates token encoding and decoding against a TokenConfig.
// It holds no mutable state, so a single Engine is safe for concurrent use.
type Engine struct {
	config TokenConfig
}

// NewEngine creates an engine for the given configuration. The configured
// algorithm is checked once here; an algorithm outside HS256/HS384/HS512
// yields ErrUnsupportedAlgorithm.
func NewEngine(config TokenConfig) (*Engine, error) {
	if config == nil {
		return nil, fmt.Errorf("token config cannot be nil")
	}
	if alg := config.Algorithm(); !alg.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	return &Engine{config: config}, nil
}

// Encode builds a signed token for the given payload:
// header construction, claim injection, JSON serialization, base64url
// encoding, signing, assembly. Any step failure short-circuits and no
// partial token is ever returned. The caller's payload map is not mutated.
func (e *Engine) Encode(ctx context.Context, payload map[string]any) (string, error) {
	alg := e.config.Algorithm()
	if !alg.Valid() {
		return "", fmt.Errorf("build header: %w: %q", ErrUnsupportedAlgorithm, alg)
	}
	header := map[string]any{
		"alg": alg.String(),
		"typ": headerType,
	}

	claims, err := InjectClaims(payload, RegisteredClaims, e.config.Claim)
	if err != nil {
		return "", fmt.Errorf("inject claims: %w", err)
	}

	headerJSON, err := e.config.EncodeJSON(header)
	if err != nil {
		return "", fmt.Errorf("serialize header: %w: %v", ErrSerialization, err)
	}
	payloadJSON, err := e.config.EncodeJSON(claims)
	if err != nil {
		return "", fmt.Errorf("serialize payload: %w: %v", ErrSerialization, err)
	}

	signingInput := EncodeSegment(headerJSON) + "." + EncodeSegment(payloadJSON)

	secret, err := e.config.SecretKey(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch secret key: %w", err)
	}

	signature, err := Sign(alg, secret, []byte(signingInput))
	if err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}

	return signingInput + "." + EncodeSegment(signature), nil
}

// Decode verifies a token and returns its payload. The signature is checked
// over the literal encoded segments, with the algorithm taken from trusted
// configuration rather than the token header, and before the payload JSON is
// parsed. The skip list exempts claims from validation only; it never
// suppresses signature verification.
func (e *Engine) Decode(ctx context.Context, token string, skip SkipList) (map[string]any, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(segments))
	}

	if _, err := DecodeSegment(segments[0]); err != nil {
		return nil, fmt.Errorf("decode header segment: %w", err)
	}
	payloadJSON, err := DecodeSegment(segments[1])
	if err != nil {
		return nil, fmt.Errorf("decode payload segment: %w", err)
	}
	signature, err := DecodeSegment(segments[2])
	if err != nil {
		return nil, fmt.Errorf("decode signature segment: %w", err)
	}

	secret, err := e.config.SecretKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch secret key: %w", err)
	}

	signingInput := segments[0] + "." + segments[1]
	ok, err := Verify(e.config.Algorithm(), secret, []byte(signingInput), signature)
	if err != nil {
		return nil, fmt.Errorf("verify signature: %w", err)
	}
	if !ok {
		return nil, ErrSignatureInvalid
	}

	payload, err := e.config.DecodeJSON(payloadJSON)
	if err != nil {
		return nil, fmt.Errorf("deserialize payload: %w: %v", ErrDeserialization, err)
	}

	if err := ValidateClaims(payload, RegisteredClaims, skip, e.config.ValidateClaim); err != nil {
		return nil, fmt.Errorf("validate claims: %w", err)
	}

	return payload, nil
}
