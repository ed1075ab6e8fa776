package pick

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-firstbreak/dsp/buffer"
	"github.com/cwbudde/algo-firstbreak/dsp/filter/stalta"
	"github.com/cwbudde/algo-firstbreak/seismic"
)

// STALTA picks the first sample, at or after the long window length, whose
// STA/LTA ratio strictly exceeds a trigger level.
type STALTA struct {
	filter  *stalta.Filter
	trigger float64
	workers int
}

// NewSTALTA returns an STA/LTA picker. Windows are in samples and must
// satisfy 0 < short < long; the trigger ratio must be positive and finite.
func NewSTALTA(short, long int, ratio float64, opts ...Option) (*STALTA, error) {
	if short <= 0 || short >= long {
		return nil, fmt.Errorf("%w: need 0 < short < long, got short=%d long=%d", ErrInvalidWindow, short, long)
	}
	if !(ratio > 0) || math.IsInf(ratio, 1) {
		return nil, fmt.Errorf("%w: ratio %v must be positive and finite", ErrInvalidThreshold, ratio)
	}
	f, err := stalta.New(short, long)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWindow, err)
	}
	cfg := applyOptions(opts)
	return &STALTA{filter: f, trigger: ratio, workers: cfg.workers}, nil
}

// Short returns the short-term window length.
func (s *STALTA) Short() int { return s.filter.Short() }

// Long returns the long-term window length, which is also the first index
// that can be picked.
func (s *STALTA) Long() int { return s.filter.Long() }

// Trigger returns the ratio a sample must exceed to be picked.
func (s *STALTA) Trigger() float64 { return s.trigger }

// Filter returns the underlying ratio filter.
func (s *STALTA) Filter() *stalta.Filter { return s.filter }

// Pick returns the first triggering index per trace, or seismic.NoPick.
func (s *STALTA) Pick(rec *seismic.Record) ([]int, error) {
	if err := seismic.Validate(rec); err != nil {
		return nil, err
	}
	return pickEach(rec, s.workers, s.first), nil
}

func (s *STALTA) first(trace []float64) int {
	start := s.filter.Stable()
	if len(trace) <= start {
		return seismic.NoPick
	}
	buf := s.ratio(trace)
	defer scratch.Put(buf)

	r := buf.Samples()
	for i := start; i < len(r); i++ {
		if r[i] > s.trigger {
			return i
		}
	}
	return seismic.NoPick
}

// ratio returns the ratio series of trace in a pooled buffer, which the
// caller hands back to scratch.
func (s *STALTA) ratio(trace []float64) *buffer.Buffer {
	buf := scratch.Get(len(trace))
	// Lengths match by construction.
	_ = s.filter.RatioTo(buf.Samples(), trace)
	return buf
}
