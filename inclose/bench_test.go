package inclose_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/galois/generate"
	"github.com/katalvlaran/galois/inclose"
	"github.com/katalvlaran/galois/internal/fixtures"
)

func BenchmarkEnumerate_Digits(b *testing.B) {
	fc := fixtures.Digits.MustContext()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := inclose.Enumerate(fc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEnumerate_Random(b *testing.B) {
	for _, n := range []int{50, 200} {
		fc, err := generate.Random(n, 40, 0.25, generate.WithSeed(42))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("sequential_%dx40", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := inclose.Enumerate(fc); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("parallel_%dx40", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := inclose.EnumerateParallel(context.Background(), fc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
