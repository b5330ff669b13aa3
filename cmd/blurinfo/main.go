// Command blurinfo prints the kernel sizing a Gaussian blur would use for a
// given image geometry and sigma, without touching any pixel data.
//
// Usage:
//
//	blurinfo [flags]
//
// Examples:
//
//	blurinfo -rows 1080 -cols 1920 -sigma 3.0
//	blurinfo -rows 256 -cols 256 -sigma 8 -channels 4
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/gaussianblur"
)

func main() {
	rows := flag.Int("rows", 1080, "image height in pixels")
	cols := flag.Int("cols", 1920, "image width in pixels")
	channels := flag.Int("channels", 3, "channel count (3=RGB, 4=RGBA)")
	sigma := flag.Float64("sigma", 3.0, "Gaussian sigma")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: blurinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the kernel sizing a Gaussian blur would use for a given\n")
		fmt.Fprintf(os.Stderr, "image geometry and sigma, without touching any pixel data.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  blurinfo -rows 1080 -cols 1920 -sigma 3.0\n")
		fmt.Fprintf(os.Stderr, "  blurinfo -rows 256 -cols 256 -sigma 8 -channels 4\n")
	}
	flag.Parse()

	geom := gaussianblur.ImageGeometry{Rows: *rows, Cols: *cols, Channels: *channels}

	spec, err := gaussianblur.BuildKernelSpectrum(geom, *sigma)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer spec.Close()

	printInfo(geom, *sigma, spec)
}

func printInfo(geom gaussianblur.ImageGeometry, sigma float64, spec *gaussianblur.KernelSpectrum) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Geometry\t%d rows x %d cols x %d channels\n", geom.Rows, geom.Cols, geom.Channels)
	fmt.Fprintf(tw, "Sigma\t%.4f\n", sigma)
	fmt.Fprintf(tw, "Pad\t%d\n", spec.Pad)
	fmt.Fprintf(tw, "Row FFT length\t%d\n", spec.FFTRow)
	fmt.Fprintf(tw, "Column FFT length\t%d\n", spec.FFTCol)
	fmt.Fprintf(tw, "Row trailing zeros\t%d\n", spec.TrailingZeroRow)
	fmt.Fprintf(tw, "Column trailing zeros\t%d\n", spec.TrailingZeroCol)
	fmt.Fprintf(tw, "Shared row/column plan\t%t\n", spec.FFTRow == spec.FFTCol)

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
