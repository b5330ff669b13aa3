package channel

import "testing"

func TestDeinterleaveRGB3x3(t *testing.T) {
	// 3x3 RGB image, row-major, channel-interleaved.
	src := []byte{
		1, 10, 100, 2, 20, 200, 3, 30, 250,
		4, 40, 40, 5, 50, 50, 6, 60, 60,
		7, 70, 70, 8, 80, 80, 9, 90, 90,
	}

	red := make([]float32, 9)
	green := make([]float32, 9)
	blue := make([]float32, 9)

	Deinterleave(src, [][]float32{red, green, blue}, 0)

	wantRed := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	wantGreen := []float32{10, 20, 30, 40, 50, 60, 70, 80, 90}
	wantBlue := []float32{100, 200, 250, 40, 50, 60, 70, 80, 90}

	for i := range 9 {
		if red[i] != wantRed[i] || green[i] != wantGreen[i] || blue[i] != wantBlue[i] {
			t.Fatalf("pixel %d: got (%v,%v,%v), want (%v,%v,%v)",
				i, red[i], green[i], blue[i], wantRed[i], wantGreen[i], wantBlue[i])
		}
	}
}

func TestInterleaveRoundsAndClamps(t *testing.T) {
	planes := [][]float32{
		{-1, 0.4, 254.6, 300},
	}
	dst := make([]byte, 4)

	Interleave(planes, dst, 0)

	want := []byte{0, 0, 255, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d]=%d, want %d", i, dst[i], want[i])
		}
	}
}

func TestDeinterleaveInterleaveRoundTrip(t *testing.T) {
	const channels = 4

	src := make([]byte, 64*channels)
	for i := range src {
		src[i] = byte(i % 256)
	}

	planes := make([][]float32, channels)
	for c := range planes {
		planes[c] = make([]float32, 64)
	}

	for _, workers := range []int{0, 1, 3, 8} {
		Deinterleave(src, planes, workers)

		got := make([]byte, len(src))
		Interleave(planes, got, workers)

		for i := range src {
			if got[i] != src[i] {
				t.Fatalf("workers=%d: round trip mismatch at %d: got %d, want %d", workers, i, got[i], src[i])
			}
		}
	}
}

func TestDeinterleaveEmpty(t *testing.T) {
	Deinterleave(nil, nil, 2)
	Interleave(nil, nil, 2)
}
