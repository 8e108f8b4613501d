package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/notceiph/whisprin/internal/testutil"
)

func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range x {
			angle := -2 * math.Pi * float64(k*j) / float64(n)
			sum += v * cmplx.Rect(1, angle)
		}
		out[k] = sum
	}
	return out
}

func TestTransformMatchesNaiveDFT(t *testing.T) {
	for _, backend := range Backends() {
		// Power-of-two, prime and mixed-radix lengths.
		for _, n := range []int{1, 7, 8, 12, 30, 49} {
			tr, err := NewTransformWithBackend(n, backend)
			if err != nil {
				t.Fatalf("NewTransformWithBackend(%d, %s) error = %v", n, backend, err)
			}
			if tr.Backend() != backend {
				t.Fatalf("Backend() = %s, want %s", tr.Backend(), backend)
			}

			src := make([]complex128, n)
			for i, v := range testutil.DeterministicNoise(int64(n), 1, n) {
				src[i] = complex(v, 0)
			}
			got := make([]complex128, n)
			if err := tr.Forward(got, src); err != nil {
				t.Fatalf("%s n=%d Forward() error = %v", backend, n, err)
			}

			want := naiveDFT(src)
			for k := range want {
				if cmplx.Abs(got[k]-want[k]) > 1e-9 {
					t.Fatalf("%s n=%d bin %d: got %v, want %v", backend, n, k, got[k], want[k])
				}
			}
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	for _, backend := range Backends() {
		for _, n := range []int{16, 22, 105} {
			tr, err := NewTransformWithBackend(n, backend)
			if err != nil {
				t.Fatalf("NewTransformWithBackend(%d, %s) error = %v", n, backend, err)
			}

			x := testutil.DeterministicNoise(3, 0.5, n)
			src := make([]complex128, n)
			for i, v := range x {
				src[i] = complex(v, 0)
			}
			bins := make([]complex128, n)
			back := make([]complex128, n)
			if err := tr.Forward(bins, src); err != nil {
				t.Fatalf("%s Forward() error = %v", backend, err)
			}
			if err := tr.Inverse(back, bins); err != nil {
				t.Fatalf("%s Inverse() error = %v", backend, err)
			}

			got := make([]float64, n)
			for i, c := range back {
				got[i] = real(c)
				if math.Abs(imag(c)) > 1e-11 {
					t.Fatalf("%s n=%d index %d: imaginary residue %v", backend, n, i, imag(c))
				}
			}
			testutil.RequireSliceNearlyEqual(t, got, x, 1e-11)
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	// 441 and 2205 share the 3²·5²·7² factors of a 0.5 s render at 44100 Hz.
	for _, n := range []int{2, 441, 2205} {
		x := testutil.DeterministicNoise(int64(n), 0.1, n)
		gains := PinkFilter(n, 44100)

		fast, err := ShapeWithBackend(BackendAlgoFFT, x, gains)
		if err != nil {
			t.Fatalf("n=%d algo-fft Shape error = %v", n, err)
		}
		slow, err := ShapeWithBackend(BackendGoDSP, x, gains)
		if err != nil {
			t.Fatalf("n=%d go-dsp Shape error = %v", n, err)
		}
		testutil.RequireSliceNearlyEqual(t, slow, fast, 1e-10)
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name    string
		want    Backend
		wantErr bool
	}{
		{name: "", want: BackendAlgoFFT},
		{name: "algo-fft", want: BackendAlgoFFT},
		{name: "go-dsp", want: BackendGoDSP},
		{name: "fftw", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.name)
		if tt.wantErr {
			if !errors.Is(err, errUnknownBackend) {
				t.Fatalf("ParseBackend(%q) error = %v, want errUnknownBackend", tt.name, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseBackend(%q) = %q, %v; want %q", tt.name, got, err, tt.want)
		}
	}
}

func TestTransformRejectsBadInput(t *testing.T) {
	for _, backend := range Backends() {
		if _, err := NewTransformWithBackend(0, backend); err == nil {
			t.Fatalf("%s: expected error for zero size", backend)
		}

		tr, err := NewTransformWithBackend(4, backend)
		if err != nil {
			t.Fatalf("NewTransformWithBackend(4, %s) error = %v", backend, err)
		}
		if err := tr.Forward(make([]complex128, 4), make([]complex128, 3)); err == nil {
			t.Fatalf("%s: expected length mismatch error", backend)
		}
		if err := tr.Inverse(make([]complex128, 5), make([]complex128, 4)); err == nil {
			t.Fatalf("%s: expected length mismatch error", backend)
		}
	}

	if _, err := NewTransformWithBackend(4, Backend("fftw")); !errors.Is(err, errUnknownBackend) {
		t.Fatalf("unknown backend error = %v, want errUnknownBackend", err)
	}
	if _, err := ShapeWithBackend(Backend("fftw"), []float64{1}, []float64{1}); !errors.Is(err, errUnknownBackend) {
		t.Fatalf("ShapeWithBackend unknown backend error = %v, want errUnknownBackend", err)
	}
}
