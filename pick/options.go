package pick

import "github.com/cwbudde/algo-firstbreak/dsp/core"

// Default refinement parameters, in samples.
const (
	DefaultGoodWindow   = 200
	DefaultSearchRadius = 100
	DefaultPolyDegree   = 2
)

type config struct {
	workers    int
	goodWindow int
	radius     int
	degree     int
}

func defaultConfig() config {
	return config{
		workers:    core.DefaultProcessorConfig().Workers,
		goodWindow: DefaultGoodWindow,
		radius:     DefaultSearchRadius,
		degree:     DefaultPolyDegree,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Option configures a strategy.
type Option func(*config)

// WithWorkers limits the number of traces processed concurrently.
// Values <= 0 are ignored.
func WithWorkers(workers int) Option {
	return func(cfg *config) {
		if workers > 0 {
			cfg.workers = workers
		}
	}
}

// WithGoodWindow sets how many samples after the earliest initial pick a
// pick may lie and still be trusted for the travel-time fit.
// Negative values are ignored.
func WithGoodWindow(samples int) Option {
	return func(cfg *config) {
		if samples >= 0 {
			cfg.goodWindow = samples
		}
	}
}

// WithSearchRadius sets the half-width of the re-search window around each
// predicted arrival. Values <= 0 are ignored.
func WithSearchRadius(samples int) Option {
	return func(cfg *config) {
		if samples > 0 {
			cfg.radius = samples
		}
	}
}

// WithPolyDegree sets the degree of the travel-time polynomial.
// Negative values are ignored.
func WithPolyDegree(degree int) Option {
	return func(cfg *config) {
		if degree >= 0 {
			cfg.degree = degree
		}
	}
}
