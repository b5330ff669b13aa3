package channel

import "github.com/cwbudde/gaussianblur/internal/tileloop"

// DefaultL2CacheBytes mirrors transpose.DefaultL2CacheBytes; kept as a
// separate constant since callers may want to size one independently of
// the other.
const DefaultL2CacheBytes = 16 * 1024 * 1024

// Deinterleave splits src, channels-interleaved 8-bit samples of
// len(planes[0])*len(planes) bytes, into one float32 plane per channel.
// Each plane must already be sized len(src)/len(planes).
func Deinterleave(src []byte, planes [][]float32, workers int) {
	channels := len(planes)
	if channels == 0 {
		return
	}

	numPixels := len(src) / channels
	if numPixels == 0 {
		return
	}

	blockSize := DefaultL2CacheBytes / (channels * 4)
	if blockSize < 1 {
		blockSize = 1
	}

	numBlocks := (numPixels + blockSize - 1) / blockSize

	tileloop.Run(numBlocks, workers, func(b int) {
		start := b * blockSize
		end := min(start+blockSize, numPixels)

		for i := start; i < end; i++ {
			base := i * channels
			for c, plane := range planes {
				plane[i] = float32(src[base+c])
			}
		}
	})
}

// Interleave is the inverse of Deinterleave: it packs one float32 plane per
// channel back into a channels-interleaved byte buffer, rounding
// half-up and clamping each sample to [0,255].
func Interleave(planes [][]float32, dst []byte, workers int) {
	channels := len(planes)
	if channels == 0 {
		return
	}

	numPixels := len(dst) / channels
	if numPixels == 0 {
		return
	}

	blockSize := DefaultL2CacheBytes / (channels * 4)
	if blockSize < 1 {
		blockSize = 1
	}

	numBlocks := (numPixels + blockSize - 1) / blockSize

	tileloop.Run(numBlocks, workers, func(b int) {
		start := b * blockSize
		end := min(start+blockSize, numPixels)

		for i := start; i < end; i++ {
			base := i * channels
			for c, plane := range planes {
				dst[base+c] = toByte(plane[i])
			}
		}
	})
}

func toByte(v float32) byte {
	v += 0.5

	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return byte(v)
	}
}
