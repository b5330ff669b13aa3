package transpose

import (
	"math"

	"github.com/cwbudde/gaussianblur/internal/tileloop"
)

// DefaultL2CacheBytes is the assumed L2 cache size used to size transpose
// tiles. It is a performance tuning constant, not a correctness parameter.
const DefaultL2CacheBytes = 16 * 1024 * 1024

const elemSize = 4 // float32

// Planar transposes src, a row-major h-by-w array (h rows of w elements
// each), into dst, a row-major w-by-h array (w rows of h elements each):
//
//	dst[x*h+y] == src[y*w+x]    for all x in [0,w), y in [0,h)
//
// dst and src must not overlap and must have length w*h. Work is tiled
// into square blocks sized from DefaultL2CacheBytes and dispatched across
// workers via tileloop.
func Planar(dst, src []float32, w, h, workers int) {
	Block(dst, src, w, h, workers, DefaultL2CacheBytes)
}

// Block is Planar with an explicit L2 cache size, primarily for tests that
// want to exercise multiple tiles on small arrays.
func Block(dst, src []float32, w, h, workers, l2CacheBytes int) {
	if w <= 0 || h <= 0 {
		return
	}

	block := int(math.Sqrt(float64(l2CacheBytes) / elemSize))
	if block < 1 {
		block = 1
	}

	wBlocks := ceilDiv(w, block)
	hBlocks := ceilDiv(h, block)

	lastW := lastBlockSize(w, block)
	lastH := lastBlockSize(h, block)

	tileloop.Run(wBlocks*hBlocks, workers, func(n int) {
		bx := n / hBlocks
		by := n % hBlocks

		blockX := block
		if bx == wBlocks-1 {
			blockX = lastW
		}

		blockY := block
		if by == hBlocks-1 {
			blockY = lastH
		}

		x0 := bx * block
		y0 := by * block

		for xx := range blockX {
			srcCol := src[y0*w+x0+xx:]
			dstCol := dst[(x0+xx)*h+y0:]

			for yy := range blockY {
				dstCol[yy] = srcCol[yy*w]
			}
		}
	})
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func lastBlockSize(total, block int) int {
	if r := total % block; r != 0 {
		return r
	}

	return block
}
