package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ringnet/lattice"
	"github.com/katalvlaran/ringnet/matrix"
)

// randomTable returns an r×c table of uniform values in [0,1) from a fixed seed.
func randomTable(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = m.Set(i, j, rng.Float64())
		}
	}

	return m
}

// BenchmarkBuild measures a sequential build over 10k rows × 8 dimensions.
func BenchmarkBuild(b *testing.B) {
	data := randomTable(b, 10000, 8)
	weights := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lattice.Build(data, weights, 0.01)
	}
}

// BenchmarkBuild_Workers measures the same build fanned out over 4 workers.
func BenchmarkBuild_Workers(b *testing.B) {
	data := randomTable(b, 10000, 8)
	weights := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lattice.Build(data, weights, 0.01, lattice.WithWorkers(4))
	}
}
