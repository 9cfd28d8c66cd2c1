package jsonlex_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/creachadair/jsonlex"
)

func BenchmarkTokenize(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	text := string(input)
	b.Run("Strict", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			toks, err := jsonlex.Tokenize(text)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}

			// The standard library Decoder converts tokens to values.
			// For a fair comparison, do the same here.
			for _, tok := range toks {
				tok.Value()
			}
		}
	})

	b.Run("Lenient", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, tok := range jsonlex.TokenizeLenient(text) {
				tok.Value()
			}
		}
	})
}
