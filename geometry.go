// Package gaussianblur blurs 8-bit interleaved RGB/RGBA raster images with a
// separable Gaussian kernel applied in the frequency domain: one real-FFT
// convolution pass over rows, a cache-blocked transpose, then the same pass
// over what were columns.
package gaussianblur

// ImageGeometry describes the shape of an interleaved raster image.
type ImageGeometry struct {
	Rows     int
	Cols     int
	Channels int
}

// PixelCount returns Rows*Cols, the number of pixels per channel plane.
func (g ImageGeometry) PixelCount() int {
	return g.Rows * g.Cols
}

// Image is an interleaved 8-bit raster image: Data has
// Geometry.Rows*Geometry.Cols*Geometry.Channels bytes, channel-interleaved
// per pixel in row-major order.
type Image struct {
	Geometry ImageGeometry
	Data     []byte
}
