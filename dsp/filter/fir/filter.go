package fir

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned when a filter is requested with no taps.
var ErrInvalidLength = errors.New("fir: filter length must be > 0")

// Filter implements a direct-form FIR filter using a circular-buffer delay line.
//
// When every tap carries the same weight (a boxcar or moving-average kernel)
// the filter keeps a running sum of the delay line instead of evaluating the
// full convolution, so each sample costs O(1). The running sum is recomputed
// from the delay line once per buffer wrap to bound rounding drift.
type Filter struct {
	coeffs []float64
	delay  []float64
	pos    int

	boxcar bool
	gain   float64
	sum    float64
}

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. The filter order is len(coeffs)-1.
func New(coeffs []float64) *Filter {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	f := &Filter{
		coeffs: c,
		delay:  make([]float64, len(coeffs)),
	}
	if len(c) > 1 && uniform(c) {
		f.boxcar = true
		f.gain = c[0]
	}
	return f
}

// NewMovingAverage creates a causal moving-average filter over length
// samples: y[n] = (x[n] + ... + x[n-length+1]) / length, with zero history
// before the first sample.
func NewMovingAverage(length int) (*Filter, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	coeffs := make([]float64, length)
	for i := range coeffs {
		coeffs[i] = 1 / float64(length)
	}
	return New(coeffs), nil
}

func uniform(c []float64) bool {
	for _, v := range c[1:] {
		if v != c[0] {
			return false
		}
	}
	return true
}

// ProcessSample filters one input sample.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	if f.boxcar {
		return f.processBoxcar(x)
	}

	f.delay[f.pos] = x
	var y float64
	n := len(f.coeffs)
	p := f.pos
	for k := range n {
		y += f.coeffs[k] * f.delay[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}
	f.pos++
	if f.pos >= n {
		f.pos = 0
	}
	return y
}

func (f *Filter) processBoxcar(x float64) float64 {
	f.sum += x - f.delay[f.pos]
	f.delay[f.pos] = x
	f.pos++
	if f.pos >= len(f.delay) {
		f.pos = 0
		var s float64
		for _, v := range f.delay {
			s += v
		}
		f.sum = s
	}
	return f.gain * f.sum
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	for i := range f.delay {
		f.delay[i] = 0
	}
	f.pos = 0
	f.sum = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Len returns the number of taps.
func (f *Filter) Len() int {
	return len(f.coeffs)
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}
