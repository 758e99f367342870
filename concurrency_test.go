package hstoken

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcurrentEncodeDecode(t *testing.T) {
	engine := newTestEngine(t, HS256)
	ctx := context.Background()

	var wg sync.WaitGroup

	t.Run("Concurrent Encoding", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := engine.Encode(ctx, map[string]any{"sub": "u1"})
				require.NoError(t, err)
			}()
		}
		wg.Wait()
	})

	t.Run("Concurrent Decoding", func(t *testing.T) {
		token := encodeTestToken(t, engine, map[string]any{"sub": "u1"})

		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				decoded, err := engine.Decode(ctx, token, nil)
				require.NoError(t, err)
				require.Equal(t, "u1", decoded["sub"])
			}()
		}
		wg.Wait()
	})
}
