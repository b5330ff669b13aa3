package realfft

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrOddLength is returned by NewPlan for transform lengths that aren't
// even; the ordered layout relies on a distinct Nyquist bin.
var ErrOddLength = errors.New("realfft: length must be even")

// ErrScratchLen is returned when a caller's scratch buffer doesn't match
// ScratchLen.
var ErrScratchLen = errors.New("realfft: scratch buffer has the wrong length")

// ErrBufferLen is returned when dst or src doesn't have length N.
var ErrBufferLen = errors.New("realfft: buffer has the wrong length")

// Plan transforms real, N-sample float32 signals into and out of the
// ordered spectral layout described in the package doc, built on top of an
// algofft complex64 engine.
type Plan struct {
	n    int
	half int
	fft  *algofft.Plan[complex64]
}

// NewPlan builds a Plan for length-n real transforms. n must be even and a
// length algofft.NewPlan32 accepts.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 || n%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddLength, n)
	}

	fft, err := algofft.NewPlan32(n)
	if err != nil {
		return nil, fmt.Errorf("realfft: building complex64 plan: %w", err)
	}

	return &Plan{n: n, half: n / 2, fft: fft}, nil
}

// Close releases the underlying complex FFT plan, if it holds any
// closeable resources.
func (p *Plan) Close() error {
	if closer, ok := any(p.fft).(interface{ Close() error }); ok {
		return closer.Close()
	}

	return nil
}

// Len returns the transform length N.
func (p *Plan) Len() int { return p.n }

// ScratchLen returns the length the scratch buffer passed to
// ForwardOrdered/InverseOrdered must have.
func (p *Plan) ScratchLen() int { return p.n }

// ForwardOrdered transforms src (length N, real samples) into dst (length
// N, ordered spectral layout), using scratch (length ScratchLen()) as
// complex working space.
func (p *Plan) ForwardOrdered(dst, src []float32, scratch []complex64) error {
	if len(src) != p.n || len(dst) != p.n {
		return fmt.Errorf("%w: want %d, got src=%d dst=%d", ErrBufferLen, p.n, len(src), len(dst))
	}

	if len(scratch) != p.n {
		return fmt.Errorf("%w: want %d, got %d", ErrScratchLen, p.n, len(scratch))
	}

	for i, v := range src {
		scratch[i] = complex(v, 0)
	}

	if err := p.fft.Forward(scratch, scratch); err != nil {
		return fmt.Errorf("realfft: forward transform: %w", err)
	}

	dst[0] = real(scratch[0])
	dst[1] = real(scratch[p.half])

	for k := 1; k < p.half; k++ {
		dst[2*k] = real(scratch[k])
		dst[2*k+1] = imag(scratch[k])
	}

	return nil
}

// InverseOrdered reconstructs the full conjugate-symmetric spectrum from
// src (length N, ordered spectral layout) and runs the inverse complex
// transform, writing its real part into dst (length N). The underlying
// algofft transform normalizes its inverse (divides by N), so dst already
// carries the correctly scaled result — callers must not apply a further
// 1/N factor. scratch must have length ScratchLen().
func (p *Plan) InverseOrdered(dst, src []float32, scratch []complex64) error {
	if len(src) != p.n || len(dst) != p.n {
		return fmt.Errorf("%w: want %d, got src=%d dst=%d", ErrBufferLen, p.n, len(src), len(dst))
	}

	if len(scratch) != p.n {
		return fmt.Errorf("%w: want %d, got %d", ErrScratchLen, p.n, len(scratch))
	}

	scratch[0] = complex(src[0], 0)
	scratch[p.half] = complex(src[1], 0)

	for k := 1; k < p.half; k++ {
		re := src[2*k]
		im := src[2*k+1]
		scratch[k] = complex(re, im)
		scratch[p.n-k] = complex(re, -im)
	}

	if err := p.fft.Inverse(scratch, scratch); err != nil {
		return fmt.Errorf("realfft: inverse transform: %w", err)
	}

	for i, v := range scratch {
		dst[i] = real(v)
	}

	return nil
}
