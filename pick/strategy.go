package pick

import (
	"github.com/cwbudde/algo-firstbreak/dsp/buffer"
	"github.com/cwbudde/algo-firstbreak/seismic"
	"golang.org/x/sync/errgroup"
)

// Strategy produces one pick per trace of a record.
type Strategy interface {
	Pick(rec *seismic.Record) ([]int, error)
}

// GeometryStrategy is a Strategy that needs the sensor coordinates of the
// record's traces.
type GeometryStrategy interface {
	Strategy
	PickWithGeometry(rec *seismic.Record, geom *seismic.Geometry) ([]int, error)
}

// scratch holds ratio series while traces are scanned.
var scratch = buffer.NewPool()

// eachTrace calls fn for every trace index, at most workers at a time.
// fn must only write state owned by its own trace.
func eachTrace(rec *seismic.Record, workers int, fn func(j int, trace []float64)) {
	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for j := range rec.Traces() {
		g.Go(func() error {
			fn(j, rec.Trace(j))
			return nil
		})
	}
	_ = g.Wait()
}

func pickEach(rec *seismic.Record, workers int, pickTrace func(trace []float64) int) []int {
	picks := make([]int, rec.Traces())
	eachTrace(rec, workers, func(j int, trace []float64) {
		picks[j] = pickTrace(trace)
	})
	return picks
}
