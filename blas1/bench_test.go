package blas1_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlsparse/blas1"
)

func benchVector(n int) []float64 {
	rng := rand.New(rand.NewSource(6006))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	return x
}

// BenchmarkNrm2 measures the default (gonum-backed) path.
func BenchmarkNrm2(b *testing.B) {
	x := benchVector(100_000)

	var sink float64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink += blas1.Nrm2(x)
	}
	_ = sink
}

// BenchmarkIamax measures the default index reduction.
func BenchmarkIamax(b *testing.B) {
	x := benchVector(100_000)

	var sink int
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink += blas1.Iamax(x)
	}
	_ = sink
}
