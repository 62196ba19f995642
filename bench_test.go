// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbuild_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/creachadair/jbuild"
	"github.com/goccy/go-json"
)

func BenchmarkScanner(b *testing.B) {
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

	b.Run("Scanner", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := jbuild.NewScanner(bytes.NewReader(input))
			for s.Next() {
				// The comparison Decoder converts tokens to values. For a fair
				// comparison, do the same for strings and numbers.
				switch s.Token() {
				case jbuild.String:
					s.Unescape()
				case jbuild.Number:
					s.Float64()
				}
			}
			if s.Err() != nil {
				b.Fatalf("Unexpected error: %v", s.Err())
			}
		}
	})
}
