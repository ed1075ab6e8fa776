package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireIndicesEqual fails t unless got and want hold identical pick
// indices.
func RequireIndicesEqual(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d (got %v)", len(got), len(want), got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d (got %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}

// RequirePicksWithin fails t unless every got[i]-want[i] lies in
// [lo, hi]. Entries equal to -1 must match exactly.
func RequirePicksWithin(t *testing.T, got, want []int, lo, hi int) {
	t.Helper()
	if err := picksWithin(got, want, lo, hi); err != nil {
		t.Fatal(err)
	}
}

func picksWithin(got, want []int, lo, hi int) error {
	if len(got) != len(want) {
		return fmt.Errorf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] == -1 || want[i] == -1 {
			if got[i] != want[i] {
				return fmt.Errorf("trace %d: got %d, want %d", i, got[i], want[i])
			}
			continue
		}
		if d := got[i] - want[i]; d < lo || d > hi {
			return fmt.Errorf("trace %d: got %d, want %d%+d..%+d (off by %d)", i, got[i], want[i], lo, hi, d)
		}
	}
	return nil
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
