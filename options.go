package gaussianblur

import "runtime"

// blurConfig controls the performance-only knobs of Blur; it never changes
// the numeric result of a blur, only how the work is scheduled.
type blurConfig struct {
	workers int
}

// BlurOption mutates a blurConfig.
type BlurOption func(*blurConfig)

func defaultBlurConfig() blurConfig {
	return blurConfig{workers: runtime.GOMAXPROCS(0)}
}

func applyBlurOptions(opts ...BlurOption) blurConfig {
	cfg := defaultBlurConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithWorkers overrides the default worker count (runtime.GOMAXPROCS(0))
// used to parallelize tiling, (de)interleaving and transposing. n <= 0 is
// ignored.
func WithWorkers(n int) BlurOption {
	return func(cfg *blurConfig) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithSequential forces single-threaded, deterministic-order processing.
// Equivalent to WithWorkers(1).
func WithSequential() BlurOption {
	return func(cfg *blurConfig) {
		cfg.workers = 1
	}
}
