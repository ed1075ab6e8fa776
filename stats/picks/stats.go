// Package picks converts and scores first-break pick indices.
package picks

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-firstbreak/seismic"
	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when two pick slices cover a different
// number of traces.
var ErrLengthMismatch = errors.New("picks: length mismatch")

// ToMilliseconds converts sample indices to milliseconds at sample rate fs.
// seismic.NoPick maps to NaN.
func ToMilliseconds(picks []int, fs float64) []float64 {
	out := make([]float64, len(picks))
	for j, p := range picks {
		if p == seismic.NoPick {
			out[j] = math.NaN()
			continue
		}
		out[j] = float64(p) / fs * 1000
	}
	return out
}

// Errors returns got-want for every trace where both picks are valid, in
// trace order.
func Errors(got, want []int) ([]int, error) {
	if len(got) != len(want) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(got), len(want))
	}
	var diff []int
	for j := range got {
		if got[j] == seismic.NoPick || want[j] == seismic.NoPick {
			continue
		}
		diff = append(diff, got[j]-want[j])
	}
	return diff, nil
}

// Comparison summarises picks against reference picks, in samples.
type Comparison struct {
	Traces   int
	Matched  int     // both valid
	Missing  int     // reference valid, pick absent
	Spurious int     // pick present, reference absent
	Bias     float64 // mean signed error
	MAE      float64 // mean absolute error
	RMSE     float64
	MaxAbs   int
}

// Compare scores got against want. Error statistics cover matched traces
// only and are NaN when there are none.
func Compare(got, want []int) (Comparison, error) {
	diff, err := Errors(got, want)
	if err != nil {
		return Comparison{}, err
	}

	c := Comparison{Traces: len(got), Matched: len(diff)}
	for j := range got {
		switch {
		case got[j] == seismic.NoPick && want[j] != seismic.NoPick:
			c.Missing++
		case got[j] != seismic.NoPick && want[j] == seismic.NoPick:
			c.Spurious++
		}
	}
	if len(diff) == 0 {
		c.Bias, c.MAE, c.RMSE = math.NaN(), math.NaN(), math.NaN()
		return c, nil
	}

	e := make([]float64, len(diff))
	abs := make([]float64, len(diff))
	sq := make([]float64, len(diff))
	for i, d := range diff {
		e[i] = float64(d)
		abs[i] = math.Abs(e[i])
		sq[i] = e[i] * e[i]
		c.MaxAbs = max(c.MaxAbs, int(abs[i]))
	}
	c.Bias = stat.Mean(e, nil)
	c.MAE = stat.Mean(abs, nil)
	c.RMSE = math.Sqrt(stat.Mean(sq, nil))
	return c, nil
}

// RMSEMilliseconds returns the comparison's RMSE converted to milliseconds
// at sample rate fs.
func (c Comparison) RMSEMilliseconds(fs float64) float64 {
	return c.RMSE / fs * 1000
}
