package pick

import (
	"testing"

	"github.com/cwbudde/algo-firstbreak/dsp/core"
	"github.com/cwbudde/algo-firstbreak/dsp/signal"
	"github.com/cwbudde/algo-firstbreak/seismic"
	"github.com/cwbudde/algo-firstbreak/seismic/synth"
)

func mustTraces(t testing.TB, traces [][]float64) *seismic.Record {
	t.Helper()
	rec, err := seismic.FromTraces(traces)
	if err != nil {
		t.Fatalf("FromTraces: %v", err)
	}
	return rec
}

func mustLine(t testing.TB, n int) *seismic.Geometry {
	t.Helper()
	geom, err := seismic.Line(n, 0, 5)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	return geom
}

func mustShot(t testing.TB) *synth.Shot {
	t.Helper()
	gen := signal.NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(2000)}, signal.WithSeed(7))
	shot, err := synth.NewShot(synth.DefaultShotConfig(), gen)
	if err != nil {
		t.Fatalf("NewShot: %v", err)
	}
	return shot
}

func mustNoisyShot(t testing.TB, snr float64) (*seismic.Record, *synth.Shot) {
	t.Helper()
	shot := mustShot(t)
	gen := signal.NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(2000)}, signal.WithSeed(11))
	rec, err := synth.AddNoise(shot.Record, snr, signal.NoiseWhite, gen)
	if err != nil {
		t.Fatalf("AddNoise: %v", err)
	}
	return rec, shot
}
