package signal

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// NoiseKind selects the spectral colour of synthesised noise.
type NoiseKind int

const (
	// NoiseWhite is Gaussian noise with a flat spectrum.
	NoiseWhite NoiseKind = iota
	// NoisePink is Gaussian noise shaped to a 1/f power spectrum.
	NoisePink
)

// String returns the lower-case name of the noise kind.
func (k NoiseKind) String() string {
	switch k {
	case NoiseWhite:
		return "white"
	case NoisePink:
		return "pink"
	default:
		return fmt.Sprintf("NoiseKind(%d)", int(k))
	}
}

// ParseNoiseKind maps "white" or "pink" to a NoiseKind.
func ParseNoiseKind(s string) (NoiseKind, error) {
	switch s {
	case "white":
		return NoiseWhite, nil
	case "pink":
		return NoisePink, nil
	default:
		return 0, fmt.Errorf("unknown noise kind %q (want white or pink)", s)
	}
}

// Noise generates noise of the given kind.
func (g *Generator) Noise(kind NoiseKind, samples int) ([]float64, error) {
	switch kind {
	case NoiseWhite:
		return g.GaussianNoise(samples)
	case NoisePink:
		return g.PinkNoise(samples)
	default:
		return nil, fmt.Errorf("unsupported noise kind: %v", kind)
	}
}

// PinkNoise generates Gaussian noise whose amplitude spectrum falls as
// 1/sqrt(f), so power falls as 1/f. White noise is shaped in the frequency
// domain with the generator's sample rate defining the frequency axis; the
// DC bin is removed so the result has zero mean.
func (g *Generator) PinkNoise(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}

	n := nextPowerOf2(samples)
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("signal: failed to create FFT plan: %w", err)
	}

	buf := make([]complex128, n)
	for i := range buf {
		buf[i] = complex(g.rng.NormFloat64(), 0)
	}
	if err := plan.Forward(buf, buf); err != nil {
		return nil, fmt.Errorf("signal: forward FFT failed: %w", err)
	}

	// Bins k and n-k share |f|, which keeps the shaped spectrum Hermitian
	// and the inverse transform real.
	df := g.cfg.SampleRate / float64(n)
	buf[0] = 0
	for k := 1; k < n; k++ {
		f := float64(min(k, n-k)) * df
		buf[k] *= complex(1/math.Sqrt(f), 0)
	}

	if err := plan.Inverse(buf, buf); err != nil {
		return nil, fmt.Errorf("signal: inverse FFT failed: %w", err)
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = real(buf[i])
	}
	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
