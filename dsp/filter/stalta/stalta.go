package stalta

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-firstbreak/dsp/filter/fir"
)

// Epsilon is added to the long-term average to keep the ratio finite on
// silent input.
const Epsilon = 1e-15

// Errors returned by the ratio filter.
var (
	ErrInvalidWindow  = errors.New("stalta: invalid window lengths")
	ErrLengthMismatch = errors.New("stalta: buffer length mismatch")
)

// Filter holds the window lengths of an STA/LTA ratio filter. It carries no
// per-trace state and is safe for concurrent use.
type Filter struct {
	short int
	long  int
}

// New returns a ratio filter with the given window lengths in samples.
// Both must be positive and short must not exceed long.
func New(short, long int) (*Filter, error) {
	if short <= 0 || long <= 0 {
		return nil, fmt.Errorf("%w: short=%d long=%d must be > 0", ErrInvalidWindow, short, long)
	}
	if short > long {
		return nil, fmt.Errorf("%w: short=%d exceeds long=%d", ErrInvalidWindow, short, long)
	}
	return &Filter{short: short, long: long}, nil
}

// Short returns the short-term window length.
func (f *Filter) Short() int { return f.short }

// Long returns the long-term window length.
func (f *Filter) Long() int { return f.long }

// Stable returns the first index at which the ratio is fully formed.
func (f *Filter) Stable() int { return f.long }

// Ratio returns a new slice holding the ratio series of trace.
func (f *Filter) Ratio(trace []float64) []float64 {
	out := make([]float64, len(trace))
	f.ratio(out, trace)
	return out
}

// RatioTo writes the ratio series of trace into dst, which must have the
// same length as trace.
func (f *Filter) RatioTo(dst, trace []float64) error {
	if len(dst) != len(trace) {
		return fmt.Errorf("%w: dst=%d trace=%d", ErrLengthMismatch, len(dst), len(trace))
	}
	f.ratio(dst, trace)
	return nil
}

func (f *Filter) ratio(dst, trace []float64) {
	if len(trace) == 0 {
		return
	}

	// Window lengths are validated in New, so construction cannot fail here.
	sta, _ := fir.NewMovingAverage(f.short)
	lta, _ := fir.NewMovingAverage(f.long)

	for i, x := range trace {
		a := math.Abs(x)
		s := math.Max(sta.ProcessSample(a), 0)
		l := math.Max(lta.ProcessSample(a), 0)
		dst[i] = s / (l + Epsilon)
	}
}
