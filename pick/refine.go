package pick

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-firstbreak/dsp/core"
	"github.com/cwbudde/algo-firstbreak/internal/polyfit"
	"github.com/cwbudde/algo-firstbreak/seismic"
)

// ModelDriven refines STA/LTA picks with a travel-time model.
//
// The initial STA/LTA pass is filtered to picks lying within the good window
// of the earliest one. A polynomial mapping distance-from-source to arrival
// sample is fitted through them, and every trace is re-searched for its
// ratio peak inside a window of the search radius around the prediction.
// When the model cannot be fitted the initial picks are returned unchanged.
type ModelDriven struct {
	base       *STALTA
	goodWindow int
	radius     int
	degree     int
	workers    int
}

// NewModelDriven returns a model-driven refinement picker built on an
// STA/LTA pass with the given parameters.
func NewModelDriven(short, long int, ratio float64, opts ...Option) (*ModelDriven, error) {
	base, err := NewSTALTA(short, long, ratio, opts...)
	if err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)
	return &ModelDriven{
		base:       base,
		goodWindow: cfg.goodWindow,
		radius:     cfg.radius,
		degree:     cfg.degree,
		workers:    cfg.workers,
	}, nil
}

// Base returns the STA/LTA strategy used for the initial pass.
func (m *ModelDriven) Base() *STALTA { return m.base }

// GoodWindow returns the trusted-pick span in samples.
func (m *ModelDriven) GoodWindow() int { return m.goodWindow }

// SearchRadius returns the re-search half-width in samples.
func (m *ModelDriven) SearchRadius() int { return m.radius }

// Degree returns the travel-time polynomial degree.
func (m *ModelDriven) Degree() int { return m.degree }

// Model is the intermediate state of a model-driven pick.
type Model struct {
	// Initial holds the unfiltered STA/LTA picks.
	Initial []int
	// Source is the trace with the earliest initial pick, or seismic.NoPick
	// when the initial pass found nothing.
	Source    int
	Distances []float64
	// Trusted lists the traces whose picks were used for the fit.
	Trusted []int
	// Fallback is set when no model could be fitted.
	Fallback bool

	poly polyfit.Poly
}

// Predict returns the predicted arrival sample at the given distance from
// the source, truncated toward zero. ok is false for a fallback model or a
// prediction that is not representable.
func (m *Model) Predict(distance float64) (sample int, ok bool) {
	if m.Fallback {
		return seismic.NoPick, false
	}
	v := m.poly.Eval(distance)
	if !core.IsFinite(v) || math.Abs(v) > math.MaxInt32 {
		return seismic.NoPick, false
	}
	return int(v), true
}

// Pick always fails: refinement needs sensor coordinates.
func (m *ModelDriven) Pick(rec *seismic.Record) ([]int, error) {
	return nil, fmt.Errorf("%w: use PickWithGeometry", ErrMissingGeometry)
}

// Fit runs the initial pass and fits the travel-time model. A model that
// cannot be fitted is not an error; it is returned with Fallback set.
func (m *ModelDriven) Fit(rec *seismic.Record, geom *seismic.Geometry) (*Model, error) {
	if err := seismic.Validate(rec); err != nil {
		return nil, err
	}
	if geom == nil {
		return nil, ErrMissingGeometry
	}
	if err := geom.Check(rec); err != nil {
		return nil, err
	}

	initial, err := m.base.Pick(rec)
	if err != nil {
		return nil, err
	}
	model := &Model{Initial: initial, Source: seismic.NoPick, Fallback: true}

	src, err := geom.SourceIndex(initial)
	if errors.Is(err, seismic.ErrNoValidPick) {
		return model, nil
	}
	if err != nil {
		return nil, err
	}
	model.Source = src
	model.Distances = geom.DistancesFrom(src)

	earliest := initial[src]
	var x, y []float64
	for j, p := range initial {
		if p == seismic.NoPick || p-earliest > m.goodWindow {
			continue
		}
		model.Trusted = append(model.Trusted, j)
		x = append(x, model.Distances[j])
		y = append(y, float64(p))
	}
	if len(model.Trusted) < m.degree+1 {
		return model, nil
	}

	poly, err := polyfit.Fit(x, y, m.degree)
	if err != nil {
		return model, nil
	}
	model.poly = poly
	model.Fallback = false
	return model, nil
}

// PickWithGeometry returns the refined picks, or the initial STA/LTA picks
// when no travel-time model could be fitted.
func (m *ModelDriven) PickWithGeometry(rec *seismic.Record, geom *seismic.Geometry) ([]int, error) {
	model, err := m.Fit(rec, geom)
	if err != nil {
		return nil, err
	}
	if model.Fallback {
		return model.Initial, nil
	}

	picks := make([]int, rec.Traces())
	eachTrace(rec, m.workers, func(j int, trace []float64) {
		predicted, ok := model.Predict(model.Distances[j])
		if !ok {
			picks[j] = seismic.NoPick
			return
		}
		picks[j] = m.search(trace, predicted)
	})
	return picks, nil
}

// search returns the ratio peak inside the window around predicted when it
// exceeds the trigger.
func (m *ModelDriven) search(trace []float64, predicted int) int {
	lo := max(m.base.Long(), predicted-m.radius)
	hi := min(len(trace), predicted+m.radius)
	if lo >= hi {
		return seismic.NoPick
	}

	buf := m.base.ratio(trace[:hi])
	defer scratch.Put(buf)

	r := buf.Samples()
	best := lo
	for i := lo + 1; i < hi; i++ {
		if r[i] > r[best] {
			best = i
		}
	}
	if r[best] > m.base.Trigger() {
		return best
	}
	return seismic.NoPick
}
