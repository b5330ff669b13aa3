// Package realfft adapts algofft's complex FFT engine to a real-valued,
// ordered-spectrum interface sized for single-precision image convolution.
//
// A real N-point signal has a conjugate-symmetric spectrum: X[N-k] ==
// conj(X[k]). ForwardOrdered exploits this to pack the independent half of
// the spectrum into an N-length float32 slice instead of an N-length
// complex one, with DC and the Nyquist bin (both purely real for a real
// input) stored as the first pseudo-complex pair:
//
//	ordered[0] = Re(X[0])       // DC
//	ordered[1] = Re(X[N/2])     // Nyquist
//	ordered[2k]   = Re(X[k])    // for k in [1, N/2)
//	ordered[2k+1] = Im(X[k])
//
// This is the wire format a pointwise spectral multiply against another
// ordered spectrum expects: multiplying ordered[0] and ordered[1] by the
// corresponding real-valued kernel bins scales DC and Nyquist independently,
// and multiplying each (ordered[2k], ordered[2k+1]) pair by a real scalar
// scales that bin's magnitude without touching its phase. InverseOrdered is
// the exact inverse: it reconstructs the full conjugate-symmetric spectrum
// and runs the complex inverse transform, returning its real part. algofft's
// inverse transform normalizes by N, so the returned values are already
// correctly scaled and need no further division.
package realfft
