package core

import "runtime"

// DefaultSampleRate is the sampling frequency assumed when none is given.
// It matches the 0.5 ms sampling interval common to near-surface surveys.
const DefaultSampleRate = 2000

// ProcessorConfig defines settings shared by pickers and generators.
type ProcessorConfig struct {
	// SampleRate is the sampling frequency in Hz.
	SampleRate float64
	// Workers bounds the number of traces processed concurrently.
	Workers int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the default configuration. Workers defaults
// to GOMAXPROCS.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// WithSampleRate sets the sampling frequency.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWorkers sets the per-trace concurrency limit. A value of 1 processes
// traces sequentially.
func WithWorkers(workers int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
