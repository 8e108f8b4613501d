package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
)

var (
	errInvalidSize      = errors.New("spectrum: transform size must be > 0")
	errMismatchedLength = errors.New("spectrum: buffer length does not match transform size")
	errUnknownBackend   = errors.New("spectrum: unknown FFT backend")
)

// Backend names the implementation a Transform dispatches to.
type Backend string

const (
	// BackendAlgoFFT plans the transform with algo-fft. It is the default.
	BackendAlgoFFT Backend = "algo-fft"
	// BackendGoDSP uses go-dsp's FFT, which covers any length via Bluestein.
	BackendGoDSP Backend = "go-dsp"
)

// Backends lists the available FFT implementations.
func Backends() []Backend {
	return []Backend{BackendAlgoFFT, BackendGoDSP}
}

// ParseBackend maps a backend name to its Backend. The empty string selects
// BackendAlgoFFT.
func ParseBackend(name string) (Backend, error) {
	switch Backend(name) {
	case "", BackendAlgoFFT:
		return BackendAlgoFFT, nil
	case BackendGoDSP:
		return BackendGoDSP, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownBackend, name)
	}
}

// Transform computes forward and inverse DFTs of one fixed length.
// Inverse is normalized by 1/n so Forward followed by Inverse is the identity.
type Transform struct {
	n       int
	backend Backend
	plan    *algofft.Plan[complex128]
}

// NewTransform prepares an algo-fft transform of length n.
func NewTransform(n int) (*Transform, error) {
	return NewTransformWithBackend(n, BackendAlgoFFT)
}

// NewTransformWithBackend prepares a transform of length n served by backend.
func NewTransformWithBackend(n int, backend Backend) (*Transform, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", errInvalidSize, n)
	}

	switch backend {
	case BackendAlgoFFT:
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("spectrum: failed to create FFT plan of size %d: %w", n, err)
		}
		return &Transform{n: n, backend: backend, plan: plan}, nil
	case BackendGoDSP:
		return &Transform{n: n, backend: backend}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownBackend, backend)
	}
}

// Len returns the transform length.
func (t *Transform) Len() int { return t.n }

// Backend reports which FFT implementation serves this transform.
func (t *Transform) Backend() Backend { return t.backend }

// Forward computes dst = DFT(src).
func (t *Transform) Forward(dst, src []complex128) error {
	if err := t.check(dst, src); err != nil {
		return err
	}

	if t.backend == BackendGoDSP {
		copy(dst, fft.FFT(src))
		return nil
	}

	if err := t.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("spectrum: forward transform: %w", err)
	}
	return nil
}

// Inverse computes dst = IDFT(src), scaled by 1/n.
func (t *Transform) Inverse(dst, src []complex128) error {
	if err := t.check(dst, src); err != nil {
		return err
	}

	if t.backend == BackendGoDSP {
		copy(dst, fft.IFFT(src))
		return nil
	}

	if err := t.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("spectrum: inverse transform: %w", err)
	}
	return nil
}

func (t *Transform) check(dst, src []complex128) error {
	if len(dst) != t.n || len(src) != t.n {
		return fmt.Errorf("%w: dst=%d src=%d n=%d", errMismatchedLength, len(dst), len(src), t.n)
	}
	return nil
}
