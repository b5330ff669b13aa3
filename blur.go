package gaussianblur

import (
	"fmt"

	"github.com/cwbudde/gaussianblur/internal/alignedbuf"
	"github.com/cwbudde/gaussianblur/internal/channel"
)

// Blur applies an in-place separable Gaussian blur of the given sigma to
// img's first three channels (or all four, if img has an alpha channel and
// applyToAlpha is true).
func Blur(img *Image, sigma float64, applyToAlpha bool, opts ...BlurOption) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidParameter)
	}

	if sigma <= 0 {
		return ErrInvalidParameter
	}

	geom := img.Geometry

	if geom.Channels != 3 && geom.Channels != 4 {
		return fmt.Errorf("%w: channels=%d, want 3 or 4", ErrUnsupportedInput, geom.Channels)
	}

	wantLen := geom.Rows * geom.Cols * geom.Channels
	if len(img.Data) != wantLen {
		return fmt.Errorf("%w: data length %d, want %d", ErrUnsupportedInput, len(img.Data), wantLen)
	}

	cfg := applyBlurOptions(opts...)

	planes := make([][]float32, geom.Channels)

	for c := range planes {
		buf, err := alignedbuf.Float32(geom.PixelCount())
		if err != nil {
			return fmt.Errorf("%w: allocating channel plane: %v", ErrResource, err)
		}

		planes[c] = buf
	}

	channel.Deinterleave(img.Data, planes, cfg.workers)

	spec, err := BuildKernelSpectrum(geom, sigma)
	if err != nil {
		return err
	}
	defer spec.Close()

	channelsToProcess := 3
	if geom.Channels == 4 && applyToAlpha {
		channelsToProcess = 4
	}

	// algofft's inverse transform is already normalized (divides by N), so
	// no additional 1/fftLen factor belongs here; convolveLines's scaler
	// stays at 1.
	for c := range channelsToProcess {
		plane := planes[c]

		if err := convolveLines(plane, geom.Rows, geom.Cols, spec.Pad, spec.TrailingZeroCol,
			spec.ColPlan, spec.KerfCol, 1, cfg.workers); err != nil {
			return err
		}

		if err := convolveLines(plane, geom.Cols, geom.Rows, spec.Pad, spec.TrailingZeroRow,
			spec.RowPlan, spec.KerfRow, 1, cfg.workers); err != nil {
			return err
		}
	}

	channel.Interleave(planes, img.Data, cfg.workers)

	return nil
}
