package polyfit

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestFit_ExactQuadratic(t *testing.T) {
	// y = 100 + 0.5x + 0.01x^2
	f := func(x float64) float64 { return 100 + 0.5*x + 0.01*x*x }
	x := []float64{0, 10, 20, 30, 40, 55, 70}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = f(v)
	}

	p, err := Fit(x, y, 2)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if p.Degree() != 2 {
		t.Fatalf("Degree = %d, want 2", p.Degree())
	}
	for _, v := range []float64{0, 5, 33, 70, 120} {
		if got, want := p.Eval(v), f(v); !almostEqual(got, want, 1e-8) {
			t.Errorf("Eval(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestFit_LeastSquaresLine(t *testing.T) {
	// Symmetric noise around y = 2x + 1 cancels in the least-squares sense.
	x := []float64{0, 0, 1, 1, 2, 2}
	y := []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5}

	p, err := Fit(x, y, 1)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for _, v := range []float64{0, 1, 2, 10} {
		if got, want := p.Eval(v), 2*v+1; !almostEqual(got, want, 1e-10) {
			t.Errorf("Eval(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestFit_LargeAbscissae(t *testing.T) {
	// Offsets of several kilometres must not break conditioning.
	f := func(x float64) float64 { return 3e-6*x*x + 0.2*x + 40 }
	var x, y []float64
	for v := 5000.0; v <= 6000; v += 50 {
		x = append(x, v)
		y = append(y, f(v))
	}

	p, err := Fit(x, y, 2)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if got, want := p.Eval(5525), f(5525); !almostEqual(got, want, 1e-6) {
		t.Fatalf("Eval(5525) = %v, want %v", got, want)
	}
}

func TestFit_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []float64
		degree int
	}{
		{name: "too few points", x: []float64{0, 1}, y: []float64{0, 1}, degree: 2},
		{name: "repeated abscissae", x: []float64{3, 3, 3, 3}, y: []float64{1, 2, 3, 4}, degree: 2},
		{name: "two distinct abscissae", x: []float64{1, 1, 2, 2}, y: []float64{1, 2, 3, 4}, degree: 2},
		{name: "nan ordinate", x: []float64{0, 1, 2}, y: []float64{0, math.NaN(), 2}, degree: 2},
		{name: "inf abscissa", x: []float64{0, math.Inf(1), 2}, y: []float64{0, 1, 2}, degree: 1},
		{name: "negative degree", x: []float64{0, 1}, y: []float64{0, 1}, degree: -1},
		{name: "empty", degree: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Fit(tt.x, tt.y, tt.degree); !errors.Is(err, ErrDegenerateFit) {
				t.Fatalf("Fit = %v, want ErrDegenerateFit", err)
			}
		})
	}
}

func TestFit_LengthMismatch(t *testing.T) {
	if _, err := Fit([]float64{1, 2, 3}, []float64{1, 2}, 1); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("got %v, want ErrLengthMismatch", err)
	}
}

func TestEval_ZeroValue(t *testing.T) {
	var p Poly
	if got := p.Eval(12); got != 0 {
		t.Fatalf("zero Poly Eval = %v, want 0", got)
	}
	p = Poly{Coeffs: []float64{1, 2, 3}}
	// Scale 0 is treated as 1: 1 + 2*2 + 3*4 = 17.
	if got := p.Eval(2); got != 17 {
		t.Fatalf("Eval(2) = %v, want 17", got)
	}
}
