package spectrum

import (
	"math"
	"testing"

	"github.com/notceiph/whisprin/internal/testutil"
)

func TestBinFrequencies(t *testing.T) {
	tests := []struct {
		name string
		n    int
		fs   float64
		want []float64
	}{
		{name: "even", n: 4, fs: 8, want: []float64{0, 2, -4, -2}},
		{name: "odd", n: 5, fs: 10, want: []float64{0, 2, 4, -4, -2}},
		{name: "single", n: 1, fs: 44100, want: []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireSliceNearlyEqual(t, BinFrequencies(tt.n, tt.fs), tt.want, 1e-12)
		})
	}

	if BinFrequencies(0, 44100) != nil {
		t.Fatal("expected nil for empty transform")
	}
}

func TestPinkFilter(t *testing.T) {
	got := PinkFilter(4, 8)
	want := []float64{1, 1 / math.Sqrt(2), 0.5, 1 / math.Sqrt(2)}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestPinkFilterDCGuard(t *testing.T) {
	g := PinkFilter(22050, 44100)
	if g[0] != 1 {
		t.Fatalf("DC gain = %v, want 1", g[0])
	}
	testutil.RequireFinite(t, g)
	// Gains fall with |f|.
	if !(g[1] > g[2] && g[2] > g[100]) {
		t.Fatalf("gains not decreasing: %v %v %v", g[1], g[2], g[100])
	}
	if g[1] != g[len(g)-1] {
		t.Fatalf("gain not symmetric: %v != %v", g[1], g[len(g)-1])
	}
}

func TestShapeUnityGainIsIdentity(t *testing.T) {
	x := testutil.DeterministicNoise(11, 0.1, 21)
	out, err := Shape(x, testutil.Ones(len(x)))
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, x, 1e-12)
}

func TestShapeKeepsOnlyDC(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	gains := make([]float64, len(x))
	gains[0] = 1

	out, err := Shape(x, gains)
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, testutil.DC(3.5, len(x)), 1e-12)
}

func TestShapePinkTiltsSpectrum(t *testing.T) {
	const (
		n  = 4096
		fs = 44100.0
	)
	white := testutil.DeterministicNoise(5, 0.1, n)
	pink, err := Shape(white, PinkFilter(n, fs))
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	testutil.RequireFinite(t, pink)

	cw, err := Centroid(white, fs)
	if err != nil {
		t.Fatalf("Centroid() error = %v", err)
	}
	cp, err := Centroid(pink, fs)
	if err != nil {
		t.Fatalf("Centroid() error = %v", err)
	}
	if cp >= cw/2 {
		t.Fatalf("pink centroid %v Hz not well below white centroid %v Hz", cp, cw)
	}
}

func TestShapeEmptyAndMismatch(t *testing.T) {
	out, err := Shape(nil, nil)
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}

	if _, err := Shape([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
