// Package fftsize chooses transform lengths the real-FFT primitive can
// factor efficiently: 32 multiplied by a product of 2, 3 and 5.
package fftsize
