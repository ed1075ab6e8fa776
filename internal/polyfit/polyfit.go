// Package polyfit provides least-squares polynomial fitting for the
// travel-time model used by geometry-aware pickers.
package polyfit

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-firstbreak/dsp/core"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by Fit.
var (
	ErrDegenerateFit  = errors.New("polyfit: degenerate fit")
	ErrLengthMismatch = errors.New("polyfit: x and y length mismatch")
)

// Poly is a polynomial in the normalised variable t = (x - Shift) / Scale,
// with coefficients in ascending power order:
//
//	p(x) = Coeffs[0] + Coeffs[1]*t + ... + Coeffs[d]*t^d
//
// Fitting in the normalised variable keeps the Vandermonde system well
// conditioned when x spans large distances.
type Poly struct {
	Coeffs []float64
	Shift  float64
	Scale  float64
}

// Degree returns the polynomial degree.
func (p Poly) Degree() int {
	return len(p.Coeffs) - 1
}

// Eval evaluates the polynomial at x using Horner's method.
func (p Poly) Eval(x float64) float64 {
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}
	t := (x - p.Shift) / scale
	var y float64
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*t + p.Coeffs[i]
	}
	return y
}

// Fit returns the least-squares polynomial of the given degree through the
// points (x[i], y[i]). It fails with ErrDegenerateFit when fewer than
// degree+1 distinct abscissae are available, when an input is not finite, or
// when the system is numerically singular.
func Fit(x, y []float64, degree int) (Poly, error) {
	if len(x) != len(y) {
		return Poly{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if degree < 0 {
		return Poly{}, fmt.Errorf("%w: negative degree %d", ErrDegenerateFit, degree)
	}
	for i := range x {
		if !core.IsFinite(x[i]) || !core.IsFinite(y[i]) {
			return Poly{}, fmt.Errorf("%w: point %d is not finite", ErrDegenerateFit, i)
		}
	}
	if n := distinct(x); n < degree+1 {
		return Poly{}, fmt.Errorf("%w: %d distinct points for degree %d", ErrDegenerateFit, n, degree)
	}

	shift, scale := normalisation(x)
	cols := degree + 1
	a := mat.NewDense(len(x), cols, nil)
	for i, xi := range x {
		t := (xi - shift) / scale
		v := 1.0
		for k := range cols {
			a.Set(i, k, v)
			v *= t
		}
	}
	b := mat.NewVecDense(len(y), slices.Clone(y))

	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return Poly{}, fmt.Errorf("%w: %w", ErrDegenerateFit, err)
	}

	coeffs := make([]float64, cols)
	for k := range coeffs {
		coeffs[k] = c.AtVec(k)
		if !core.IsFinite(coeffs[k]) {
			return Poly{}, fmt.Errorf("%w: coefficient %d is %v", ErrDegenerateFit, k, coeffs[k])
		}
	}
	return Poly{Coeffs: coeffs, Shift: shift, Scale: scale}, nil
}

// normalisation centres x on its mean and scales it to unit half-range.
func normalisation(x []float64) (shift, scale float64) {
	for _, v := range x {
		shift += v
	}
	shift /= float64(len(x))
	for _, v := range x {
		scale = math.Max(scale, math.Abs(v-shift))
	}
	if scale == 0 {
		scale = 1
	}
	return shift, scale
}

func distinct(x []float64) int {
	if len(x) == 0 {
		return 0
	}
	s := slices.Clone(x)
	slices.Sort(s)
	return len(slices.Compact(s))
}
