package gaussianblur

import "errors"

// Sentinel errors returned (possibly wrapped with fmt.Errorf("%w: ...", ...))
// by this package's exported functions.
var (
	ErrInvalidParameter = errors.New("gaussianblur: sigma must be > 0")
	ErrUnsupportedInput = errors.New("gaussianblur: unsupported channel count or buffer length")
	ErrResource         = errors.New("gaussianblur: allocation or FFT plan setup failed")
	ErrInternal         = errors.New("gaussianblur: FFT primitive contract violation")
)
