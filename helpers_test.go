package hstoken

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-1234567890abcdef"

func newTestEngine(t *testing.T, alg Algorithm) *Engine {
	t.Helper()

	engine, err := NewEngine(NewConfig(alg, []byte(testSecret)))
	require.NoError(t, err)
	return engine
}

func encodeTestToken(t *testing.T, engine *Engine, payload map[string]any) string {
	t.Helper()

	token, err := engine.Encode(context.Background(), payload)
	require.NoError(t, err)
	return token
}
