package hstoken

import (
	"context"
	"testing"
)

func BenchmarkEncode(b *testing.B) {
	engine, err := NewEngine(NewConfig(HS256, []byte(testSecret)))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	payload := map[string]any{"sub": "user-42", "admin": true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Encode(ctx, payload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	engine, err := NewEngine(NewConfig(HS256, []byte(testSecret)))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	token, err := engine.Encode(ctx, map[string]any{"sub": "user-42", "admin": true})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Decode(ctx, token, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSign(b *testing.B) {
	message := []byte("header.payload")
	for _, alg := range SupportedAlgorithms {
		b.Run(string(alg), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Sign(alg, []byte(testSecret), message); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
