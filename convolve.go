package gaussianblur

import (
	"fmt"

	"github.com/cwbudde/gaussianblur/internal/realfft"
	"github.com/cwbudde/gaussianblur/internal/tileloop"
	"github.com/cwbudde/gaussianblur/internal/transpose"
)

// lineScratch holds the per-worker buffers convolveLines reuses across the
// lines assigned to one worker, avoiding an allocation per line.
type lineScratch struct {
	tile, work, out []float32
	spectrum        []complex64
}

// reflectIndex clamps an already-mirrored source index idx into [0, n).
// The caller computes the mirror; idx only falls outside [0, n) when pad
// exceeds the line length, and it is then clamped rather than reflected
// again.
func reflectIndex(idx, n int) int {
	switch {
	case idx < 0:
		return 0
	case idx >= n:
		return n - 1
	default:
		return idx
	}
}

// convolveLines runs the C7 tiled 1-D real-FFT convolution over every line
// of plane (lineCount lines of lineLen samples each, row-major), then
// transposes the result back into plane so the next pass can walk what were
// columns as contiguous lines.
//
// scaler is an extra multiplier applied to every spectral bin alongside the
// kernel coefficient; callers pass 1 because internal/realfft's inverse
// transform is already normalized (divides by N), unlike the unnormalized
// FFT the original C source was written against.
func convolveLines(plane []float32, lineCount, lineLen, pad, trailingZeros int,
	plan *realfft.Plan, kerf []float32, scaler float32, workers int,
) error {
	fftLen := len(kerf)
	if fftLen != pad+lineLen+pad+trailingZeros {
		return fmt.Errorf("%w: kernel length %d does not match pad+lineLen+pad+trailingZeros=%d",
			ErrInternal, fftLen, pad+lineLen+pad+trailingZeros)
	}

	result := make([]float32, lineCount*lineLen)
	scratches := make([]*lineScratch, workers)

	var loopErr error

	tileloop.RunIndexed(lineCount, workers, func(j, worker int) {
		if loopErr != nil {
			return
		}

		sc := scratches[worker]
		if sc == nil {
			sc = &lineScratch{
				tile:     make([]float32, fftLen),
				work:     make([]float32, fftLen),
				out:      make([]float32, fftLen),
				spectrum: make([]complex64, plan.ScratchLen()),
			}
			scratches[worker] = sc
		}

		lineOff := j * lineLen

		for i := range pad {
			src := reflectIndex(pad-i, lineLen)
			sc.tile[i] = plane[lineOff+src]
		}

		copy(sc.tile[pad:pad+lineLen], plane[lineOff:lineOff+lineLen])

		for i := range pad {
			src := reflectIndex(lineLen-2-i, lineLen)
			sc.tile[pad+lineLen+i] = plane[lineOff+src]
		}

		for i := pad + lineLen + pad; i < fftLen; i++ {
			sc.tile[i] = 0
		}

		if err := plan.ForwardOrdered(sc.work, sc.tile, sc.spectrum); err != nil {
			loopErr = fmt.Errorf("%w: forward FFT: %v", ErrInternal, err)
			return
		}

		// i==0 multiplies the packed DC (work[0]) and Nyquist (work[1]) slots
		// by the same kernel DC coefficient, reproducing the original's
		// quirk; both slots hold real values in the ordered layout, so a
		// real multiplier keeps them real.
		for i := range fftLen / 2 {
			mult := kerf[2*i] * scaler
			sc.work[2*i] *= mult
			sc.work[2*i+1] *= mult
		}

		if err := plan.InverseOrdered(sc.out, sc.work, sc.spectrum); err != nil {
			loopErr = fmt.Errorf("%w: inverse FFT: %v", ErrInternal, err)
			return
		}

		copy(result[lineOff:lineOff+lineLen], sc.out[pad:pad+lineLen])
	})

	if loopErr != nil {
		return loopErr
	}

	transpose.Planar(plane, result, lineLen, lineCount, workers)

	return nil
}
