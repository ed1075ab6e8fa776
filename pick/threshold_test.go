package pick

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-firstbreak/internal/testutil"
	"github.com/cwbudde/algo-firstbreak/seismic"
)

func TestNewThresholdValidation(t *testing.T) {
	for _, th := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewThreshold(th); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("threshold %v: got %v, want ErrInvalidThreshold", th, err)
		}
	}
	s, err := NewThreshold(0.25)
	if err != nil {
		t.Fatal(err)
	}
	if s.Threshold() != 0.25 {
		t.Fatalf("Threshold() = %v, want 0.25", s.Threshold())
	}
}

func TestThresholdImpulses(t *testing.T) {
	positions := make([]int, 10)
	want := make([]int, 10)
	for i := range positions {
		positions[i] = 100 + 2*i
		want[i] = positions[i]
	}
	rec := mustTraces(t, testutil.ImpulseTraces(500, positions))

	s, err := NewThreshold(0.5)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Pick(rec)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireIndicesEqual(t, got, want)
}

func TestThresholdIsStrict(t *testing.T) {
	tests := []struct {
		name  string
		trace []float64
		want  int
	}{
		{"below", testutil.DC(0.4, 64), seismic.NoPick},
		{"equal", testutil.DC(0.5, 64), seismic.NoPick},
		{"negative excursion", []float64{0, 0.1, -0.7, 0.9}, 2},
		{"first sample", []float64{0.51, 0, 0}, 0},
		{"late spike", append(testutil.DC(0.3, 99), 40), 99},
	}
	s, err := NewThreshold(0.5)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Pick(mustTraces(t, [][]float64{tc.trace}))
			if err != nil {
				t.Fatal(err)
			}
			if got[0] != tc.want {
				t.Fatalf("got %d, want %d", got[0], tc.want)
			}
		})
	}
}

func TestSilentRecordYieldsNoPicks(t *testing.T) {
	rec := mustTraces(t, testutil.SilentTraces(300, 7))

	th, err := NewThreshold(1e-9)
	if err != nil {
		t.Fatal(err)
	}
	sl, err := NewSTALTA(20, 200, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []Strategy{th, sl} {
		got, err := s.Pick(rec)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 7 {
			t.Fatalf("%T: got %d picks, want 7", s, len(got))
		}
		for j, p := range got {
			if p != seismic.NoPick {
				t.Fatalf("%T: trace %d picked %d on silence", s, j, p)
			}
		}
	}
}

func TestMalformedRecord(t *testing.T) {
	th, _ := NewThreshold(1)
	sl, _ := NewSTALTA(2, 4, 1)
	md, _ := NewModelDriven(2, 4, 1)
	if _, err := th.Pick(nil); !errors.Is(err, seismic.ErrMalformedRecord) {
		t.Errorf("threshold: got %v, want ErrMalformedRecord", err)
	}
	if _, err := sl.Pick(nil); !errors.Is(err, seismic.ErrMalformedRecord) {
		t.Errorf("stalta: got %v, want ErrMalformedRecord", err)
	}
	if _, err := md.PickWithGeometry(nil, mustLine(t, 1)); !errors.Is(err, seismic.ErrMalformedRecord) {
		t.Errorf("model: got %v, want ErrMalformedRecord", err)
	}
}
