package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-firstbreak/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Generator creates deterministic signals from a shared configuration.
//
// Noise methods draw from a single seeded stream, so successive calls return
// different but reproducible samples. A Generator is not safe for concurrent
// use.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
	rng  *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the seed the noise stream started from.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Ricker generates a Ricker (Mexican-hat) wavelet with the given peak
// frequency whose main lobe is centred at sample delay. Samples further than
// the wavelet support from the centre are zero.
func (g *Generator) Ricker(peakHz, amplitude, delay float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ricker samples must be > 0: %d", samples)
	}
	if peakHz <= 0 {
		return nil, fmt.Errorf("ricker peak frequency must be > 0: %f", peakHz)
	}
	out := make([]float64, samples)
	support := RickerHalfWidth(peakHz) * g.cfg.SampleRate
	for i := range out {
		tau := float64(i) - delay
		if math.Abs(tau) > support {
			continue
		}
		a := math.Pi * peakHz * tau / g.cfg.SampleRate
		a *= a
		out[i] = amplitude * (1 - 2*a) * math.Exp(-a)
	}
	return out, nil
}

// RickerHalfWidth returns the time in seconds from the centre of a Ricker
// wavelet to the point where its envelope has decayed below 1e-4 of the peak.
func RickerHalfWidth(peakHz float64) float64 {
	return 1.2 / peakHz
}

// GaussianNoise generates zero-mean, unit-variance normal noise.
func (g *Generator) GaussianNoise(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = g.rng.NormFloat64()
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	out := make([]float64, len(data))
	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
