package pick

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-firstbreak/seismic"
	"github.com/cwbudde/algo-vecmath"
)

// Threshold picks the first sample whose absolute amplitude strictly
// exceeds a fixed level. Traces are not normalised.
type Threshold struct {
	threshold float64
	workers   int
}

// NewThreshold returns a threshold picker. The threshold must be positive
// and finite.
func NewThreshold(threshold float64, opts ...Option) (*Threshold, error) {
	if !(threshold > 0) || math.IsInf(threshold, 1) {
		return nil, fmt.Errorf("%w: %v must be positive and finite", ErrInvalidThreshold, threshold)
	}
	cfg := applyOptions(opts)
	return &Threshold{threshold: threshold, workers: cfg.workers}, nil
}

// Threshold returns the trigger level.
func (t *Threshold) Threshold() float64 { return t.threshold }

// Pick returns the first index per trace with |x| > threshold, or
// seismic.NoPick.
func (t *Threshold) Pick(rec *seismic.Record) ([]int, error) {
	if err := seismic.Validate(rec); err != nil {
		return nil, err
	}
	return pickEach(rec, t.workers, t.first), nil
}

func (t *Threshold) first(trace []float64) int {
	if vecmath.MaxAbs(trace) <= t.threshold {
		return seismic.NoPick
	}
	for i, x := range trace {
		if math.Abs(x) > t.threshold {
			return i
		}
	}
	return seismic.NoPick
}
