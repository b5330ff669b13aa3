package gaussianblur

import (
	"testing"

	"github.com/cwbudde/gaussianblur/internal/realfft"
)

func TestReflectIndex(t *testing.T) {
	cases := []struct {
		idx, n, want int
	}{
		{-1, 5, 0},
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 4},
		{100, 5, 4},
		{2, 5, 2},
	}

	for _, c := range cases {
		if got := reflectIndex(c.idx, c.n); got != c.want {
			t.Errorf("reflectIndex(%d, %d) = %d, want %d", c.idx, c.n, got, c.want)
		}
	}
}

// A constant line, convolved with a normalized kernel, reproduces itself
// (up to FFT floating-point error) once the reflected padding and inverse
// transform have run.
func TestConvolveLinesConstantLineIsUnchanged(t *testing.T) {
	const lineCount, lineLen = 1, 16

	geom := ImageGeometry{Rows: 1, Cols: lineLen, Channels: 3}

	spec, err := BuildKernelSpectrum(geom, 2.0)
	if err != nil {
		t.Fatalf("BuildKernelSpectrum: %v", err)
	}
	defer spec.Close()

	plane := make([]float32, lineCount*lineLen)
	for i := range plane {
		plane[i] = 100
	}

	if err := convolveLines(plane, lineCount, lineLen, spec.Pad, spec.TrailingZeroCol,
		spec.ColPlan, spec.KerfCol, 1, 2); err != nil {
		t.Fatalf("convolveLines: %v", err)
	}

	for i, v := range plane {
		diff := v - 100
		if diff < -0.5 || diff > 0.5 {
			t.Fatalf("plane[%d] = %v, want ~100", i, v)
		}
	}
}

func TestConvolveLinesRejectsMismatchedKernelLength(t *testing.T) {
	plan, err := realfft.NewPlan(32)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	defer plan.Close()

	plane := make([]float32, 8)
	kerf := make([]float32, 16) // wrong: should equal pad+lineLen+pad+trailing

	if err := convolveLines(plane, 1, 8, 2, 0, plan, kerf, 1, 1); err == nil {
		t.Fatal("expected error for mismatched kernel length")
	}
}
