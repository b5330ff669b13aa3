package gaussianblur

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/gaussianblur/internal/fftsize"
	"github.com/cwbudde/gaussianblur/internal/realfft"
)

// KernelSpectrum holds the forward-transformed 1-D Gaussian kernels used for
// the row and column convolution passes, plus the padding and transform
// sizing BuildKernelSpectrum derived for a given image geometry and sigma.
type KernelSpectrum struct {
	KerfRow, KerfCol                 []float32
	RowPlan, ColPlan                 *realfft.Plan
	Pad                              int
	TrailingZeroRow, TrailingZeroCol int
	FFTRow, FFTCol                   int

	sharedPlan bool
}

// Close releases the FFT plans owned by k.
func (k *KernelSpectrum) Close() error {
	if k == nil {
		return nil
	}

	var err error

	if k.ColPlan != nil {
		if e := k.ColPlan.Close(); e != nil {
			err = e
		}
	}

	if k.RowPlan != nil && !k.sharedPlan {
		if e := k.RowPlan.Close(); e != nil {
			err = e
		}
	}

	return err
}

// gaussianWindow returns an odd kernel width sized for sigma, capped at
// maxWidth when maxWidth > 0. The odd rounding runs after the cap, so an
// even maxWidth can yield maxWidth+1.
func gaussianWindow(sigma float64, maxWidth int) int {
	radius := math.Max(sigma*math.Sqrt(2*math.Log(255))-1, 0)
	width := int(radius*2 + 0.5)

	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}

	if width%2 == 0 {
		width++
	}

	return width
}

// gaussian1D builds a normalized 1-D Gaussian of the given odd width,
// zero-padded to fftLength and circularly centered so that convolving with
// it via a forward/inverse FFT pair introduces no linear shift.
func gaussian1D(sigma float64, width, fftLength int) []float32 {
	mid := (width - 1) / 2
	s := 2 * sigma * sigma

	raw := make([]float64, width)

	i := 0
	for y := -mid; y <= mid; y++ {
		raw[i] = math.Exp(-float64(y*y)/s) / (math.Pi * s)
		i++
	}

	var sum float64
	for _, v := range raw {
		sum += v
	}

	recip := 1 / sum

	coeffs := make([]float64, width)
	for i := range coeffs {
		coeffs[i] = recip
	}

	vecmath.MulBlockInPlace(raw, coeffs)

	centered := make([]float64, fftLength)

	rightLen := width - mid
	copy(centered[:rightLen], raw[mid:width])
	copy(centered[fftLength-mid:], raw[:mid])

	out := make([]float32, fftLength)
	for i, v := range centered {
		out[i] = float32(v)
	}

	return out
}

// BuildKernelSpectrum computes the padding, FFT sizing and forward-transformed
// 1-D Gaussian kernels needed to blur an image of the given geometry with
// the given sigma.
func BuildKernelSpectrum(geom ImageGeometry, sigma float64) (*KernelSpectrum, error) {
	if sigma <= 0 {
		return nil, ErrInvalidParameter
	}

	maxDim := geom.Rows
	if geom.Cols > maxDim {
		maxDim = geom.Cols
	}

	kSize := gaussianWindow(sigma, maxDim)
	pad := (kSize - 1) / 2

	sizeRow := geom.Rows + 2*pad
	sizeCol := geom.Cols + 2*pad

	trailingRow := 0
	if !fftsize.IsValid(sizeRow) {
		next := fftsize.Nearest(sizeRow)
		trailingRow = next - sizeRow
		sizeRow = next
	}

	trailingCol := 0
	if !fftsize.IsValid(sizeCol) {
		next := fftsize.Nearest(sizeCol)
		trailingCol = next - sizeCol
		sizeCol = next
	}

	colPlan, err := realfft.NewPlan(sizeCol)
	if err != nil {
		return nil, fmt.Errorf("%w: column FFT plan: %v", ErrResource, err)
	}

	colWindow := gaussian1D(sigma, kSize, sizeCol)
	kerfCol := make([]float32, sizeCol)
	scratch := make([]complex64, colPlan.ScratchLen())

	if err := colPlan.ForwardOrdered(kerfCol, colWindow, scratch); err != nil {
		colPlan.Close()
		return nil, fmt.Errorf("%w: column kernel FFT: %v", ErrInternal, err)
	}

	spec := &KernelSpectrum{
		KerfCol:         kerfCol,
		ColPlan:         colPlan,
		Pad:             pad,
		TrailingZeroRow: trailingRow,
		TrailingZeroCol: trailingCol,
		FFTRow:          sizeRow,
		FFTCol:          sizeCol,
	}

	if sizeRow == sizeCol {
		spec.KerfRow = kerfCol
		spec.RowPlan = colPlan
		spec.sharedPlan = true

		return spec, nil
	}

	rowPlan, err := realfft.NewPlan(sizeRow)
	if err != nil {
		colPlan.Close()
		return nil, fmt.Errorf("%w: row FFT plan: %v", ErrResource, err)
	}

	rowWindow := gaussian1D(sigma, kSize, sizeRow)
	kerfRow := make([]float32, sizeRow)

	rowScratch := scratch
	if sizeRow > len(scratch) {
		rowScratch = make([]complex64, rowPlan.ScratchLen())
	} else {
		rowScratch = rowScratch[:rowPlan.ScratchLen()]
	}

	if err := rowPlan.ForwardOrdered(kerfRow, rowWindow, rowScratch); err != nil {
		colPlan.Close()
		rowPlan.Close()

		return nil, fmt.Errorf("%w: row kernel FFT: %v", ErrInternal, err)
	}

	spec.KerfRow = kerfRow
	spec.RowPlan = rowPlan

	return spec, nil
}
