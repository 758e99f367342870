package hstoken

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tokens minted here must be accepted by golang-jwt and vice versa, for all
// three HMAC algorithms.
func TestInteropWithGolangJWT(t *testing.T) {
	ctx := context.Background()

	signingMethods := map[Algorithm]jwt.SigningMethod{
		HS256: jwt.SigningMethodHS256,
		HS384: jwt.SigningMethodHS384,
		HS512: jwt.SigningMethodHS512,
	}

	for alg, method := range signingMethods {
		t.Run(string(alg), func(t *testing.T) {
			engine := newTestEngine(t, alg)

			t.Run("Minted Here Verifies There", func(t *testing.T) {
				token := encodeTestToken(t, engine, map[string]any{
					"sub": "u1",
					"exp": time.Now().Add(time.Hour).Unix(),
				})

				parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
					return []byte(testSecret), nil
				}, jwt.WithValidMethods([]string{string(alg)}))
				require.NoError(t, err)
				require.True(t, parsed.Valid)

				claims, ok := parsed.Claims.(jwt.MapClaims)
				require.True(t, ok)
				assert.Equal(t, "u1", claims["sub"])
			})

			t.Run("Minted There Verifies Here", func(t *testing.T) {
				token := jwt.NewWithClaims(method, jwt.MapClaims{"sub": "u1"})
				signed, err := token.SignedString([]byte(testSecret))
				require.NoError(t, err)

				decoded, err := engine.Decode(ctx, signed, nil)
				require.NoError(t, err)
				assert.Equal(t, "u1", decoded["sub"])
			})
		})
	}
}

func TestAlgorithmConfusionAttack(t *testing.T) {
	// An RS256 token must never verify on an HMAC engine, even though its
	// header claims a valid algorithm name: the engine only trusts its own
	// configuration, and the RSA signature is not a valid HMAC.
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{"sub": "u1"})
	signed, err := token.SignedString(privateKey)
	require.NoError(t, err)

	engine := newTestEngine(t, HS256)
	_, err = engine.Decode(context.Background(), signed, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestNoneAlgorithmAttack(t *testing.T) {
	// An unsigned token with alg "none" has an empty signature segment,
	// which can never equal a real HMAC digest.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	engine := newTestEngine(t, HS256)
	_, err = engine.Decode(context.Background(), signed, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}
