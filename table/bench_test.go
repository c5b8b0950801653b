package table_test

import (
	"math/rand"
	"testing"

	"github.com/emkit-org/emkit/table"
)

func buildSorted(b *testing.B, n int) table.Sorted {
	b.Helper()

	rng := rand.New(rand.NewSource(42))

	t := make(table.Table, n)
	for i := range t {
		t[i] = []float64{float64(i), rng.Float64()}
	}

	s, err := table.AsSorted(t, 0)
	if err != nil {
		b.Fatalf("AsSorted failed: %v", err)
	}

	return s
}

func BenchmarkInsertionIndex(b *testing.B) {
	s := buildSorted(b, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.InsertionIndex(float64(i % 10000))
	}
}

func BenchmarkInterp(b *testing.B) {
	s := buildSorted(b, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := s.Interp(1, float64(i%9999)+0.5, false)
		if err != nil {
			b.Fatalf("Interp failed: %v", err)
		}
	}
}

func BenchmarkNearestIndex(b *testing.B) {
	arr := make([]float64, 10000)
	for i := range arr {
		arr[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := table.NearestIndex(float64(i%10000)+0.25, arr)
		if err != nil {
			b.Fatalf("NearestIndex failed: %v", err)
		}
	}
}
