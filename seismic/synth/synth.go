// Package synth builds synthetic shot gathers and noisy copies of records
// for exercising and benchmarking first-break pickers.
package synth

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-firstbreak/dsp/core"
	"github.com/cwbudde/algo-firstbreak/dsp/signal"
	"github.com/cwbudde/algo-firstbreak/seismic"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidConfig is returned for unusable shot or noise parameters.
var ErrInvalidConfig = errors.New("synth: invalid configuration")

// onsetLead is the lead-in, in periods of the peak frequency, between the
// first break and the centre of the Ricker main lobe. The wavelet is
// truncated before the first break, leaving a sharp onset.
const onsetLead = 0.6

// ShotConfig describes a single-shot gather recorded on a straight line of
// equally spaced sensors.
type ShotConfig struct {
	Samples     int     // samples per trace
	Traces      int     // number of sensors
	Spacing     float64 // sensor spacing in metres
	SourceTrace int     // sensor nearest to the shot point
	Velocity    float64 // propagation velocity in m/s
	Depth       float64 // refractor depth in metres; 0 gives linear move-out
	Delay       float64 // recording delay before the shot in seconds
	PeakHz      float64 // Ricker peak frequency
	Amplitude   float64 // peak amplitude at the source
	Decay       float64 // amplitude decay per metre of offset
}

// DefaultShotConfig returns a 48-channel gather sampled at the generator's
// default rate with arrivals well inside the record.
func DefaultShotConfig() ShotConfig {
	return ShotConfig{
		Samples:     4000,
		Traces:      48,
		Spacing:     5,
		SourceTrace: 12,
		Velocity:    800,
		Depth:       10,
		Delay:       0.3,
		PeakHz:      30,
		Amplitude:   1,
		Decay:       0.005,
	}
}

func (c ShotConfig) validate() error {
	switch {
	case c.Samples <= 0 || c.Traces <= 0:
		return fmt.Errorf("%w: shape (%d, %d)", ErrInvalidConfig, c.Samples, c.Traces)
	case c.SourceTrace < 0 || c.SourceTrace >= c.Traces:
		return fmt.Errorf("%w: source trace %d outside [0, %d)", ErrInvalidConfig, c.SourceTrace, c.Traces)
	case !(c.Spacing > 0) || !(c.Velocity > 0) || !(c.PeakHz > 0):
		return fmt.Errorf("%w: spacing, velocity and peak frequency must be > 0", ErrInvalidConfig)
	case c.Depth < 0 || c.Delay < 0 || c.Decay < 0 || c.Amplitude < 0:
		return fmt.Errorf("%w: depth, delay, decay and amplitude must be >= 0", ErrInvalidConfig)
	}
	for _, v := range []float64{c.Spacing, c.Velocity, c.Depth, c.Delay, c.PeakHz, c.Amplitude, c.Decay} {
		if !core.IsFinite(v) {
			return fmt.Errorf("%w: non-finite parameter %v", ErrInvalidConfig, v)
		}
	}
	return nil
}

// Shot is a synthetic gather together with its geometry and the true
// first-break sample of every trace.
type Shot struct {
	Record      *seismic.Record
	Geometry    *seismic.Geometry
	FirstBreaks []int
}

// TravelTime returns the first-arrival time in seconds at the given offset.
func (c ShotConfig) TravelTime(offset float64) float64 {
	return c.Delay + math.Hypot(offset, c.Depth)/c.Velocity
}

// NewShot synthesises a gather. The generator's sample rate sets the time
// axis. Traces whose arrival falls after the last sample stay silent and
// carry seismic.NoPick as their first break.
func NewShot(cfg ShotConfig, gen *signal.Generator) (*Shot, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	fs := gen.Config().SampleRate

	geom, err := seismic.Line(cfg.Traces, 0, cfg.Spacing)
	if err != nil {
		return nil, err
	}

	lead := onsetLead / cfg.PeakHz * fs
	traces := make([][]float64, cfg.Traces)
	breaks := make([]int, cfg.Traces)
	for j := range traces {
		offset := math.Abs(float64(j-cfg.SourceTrace)) * cfg.Spacing
		onset := int(math.Round(cfg.TravelTime(offset) * fs))
		amp := cfg.Amplitude * math.Exp(-cfg.Decay*offset)

		tr, err := gen.Ricker(cfg.PeakHz, amp, float64(onset)+lead, cfg.Samples)
		if err != nil {
			return nil, err
		}
		breaks[j] = seismic.NoPick
		if onset < cfg.Samples && amp > 0 {
			breaks[j] = onset
		}
		for i := range min(onset, cfg.Samples) {
			tr[i] = 0
		}
		traces[j] = tr
	}

	rec, err := seismic.FromTraces(traces)
	if err != nil {
		return nil, err
	}
	return &Shot{Record: rec, Geometry: geom, FirstBreaks: breaks}, nil
}

// AddNoise returns a copy of rec with noise of the given kind added. The
// noise is scaled so that its peak magnitude over the whole record equals
// the record's peak magnitude divided by snr.
func AddNoise(rec *seismic.Record, snr float64, kind signal.NoiseKind, gen *signal.Generator) (*seismic.Record, error) {
	noise, err := NoiseForSNR(rec, snr, kind, gen)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(rec.Data()))
	vecmath.AddBlock(out, rec.Data(), noise)
	return seismic.NewRecord(rec.Samples(), rec.Traces(), out)
}

// NoiseForSNR synthesises trace-major noise shaped like rec and scaled to
// the requested peak signal-to-noise ratio.
func NoiseForSNR(rec *seismic.Record, snr float64, kind signal.NoiseKind, gen *signal.Generator) ([]float64, error) {
	if err := seismic.Validate(rec); err != nil {
		return nil, err
	}
	if !(snr > 0) || math.IsInf(snr, 0) {
		return nil, fmt.Errorf("%w: snr must be positive and finite: %v", ErrInvalidConfig, snr)
	}

	noise := make([]float64, 0, len(rec.Data()))
	for range rec.Traces() {
		tr, err := gen.Noise(kind, rec.Samples())
		if err != nil {
			return nil, err
		}
		noise = append(noise, tr...)
	}

	target := vecmath.MaxAbs(rec.Data()) / snr
	peak := vecmath.MaxAbs(noise)
	if peak == 0 {
		return noise, nil
	}
	vecmath.ScaleBlockInPlace(noise, target/peak)
	return noise, nil
}
