// Package alignedbuf allocates float32 and complex64 buffers aligned to a
// 64-byte boundary, the alignment the real-FFT primitive requires for its
// inputs, outputs, and scratch space.
package alignedbuf
