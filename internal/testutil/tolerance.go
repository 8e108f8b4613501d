package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireStrictlyMonotonic fails t unless data strictly increases (or, with
// increasing=false, strictly decreases) from one element to the next.
func RequireStrictlyMonotonic(t testing.TB, data []float64, increasing bool) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		ok := data[i] > data[i-1]
		if !increasing {
			ok = data[i] < data[i-1]
		}
		if !ok {
			t.Fatalf("index %d: %v after %v breaks monotonic order (increasing=%v)", i, data[i], data[i-1], increasing)
		}
	}
}
