package pick

import (
	"github.com/cwbudde/algo-firstbreak/dsp/core"
	"github.com/cwbudde/algo-firstbreak/seismic"
	"github.com/cwbudde/algo-firstbreak/stats/picks"
)

// Picker runs a configured strategy. Geometry is forwarded only to
// strategies that implement GeometryStrategy.
type Picker struct {
	strategy Strategy
	cfg      core.ProcessorConfig
}

// NewPicker wraps s. The processor options set the sample rate used for
// time conversion.
func NewPicker(s Strategy, opts ...core.ProcessorOption) (*Picker, error) {
	if s == nil {
		return nil, ErrNilStrategy
	}
	return &Picker{strategy: s, cfg: core.ApplyProcessorOptions(opts...)}, nil
}

// Strategy returns the wrapped strategy.
func (p *Picker) Strategy() Strategy { return p.strategy }

// SampleRate returns the configured sample rate in Hz.
func (p *Picker) SampleRate() float64 { return p.cfg.SampleRate }

// Run returns one pick per trace. geom may be nil for strategies that do
// not use it.
func (p *Picker) Run(rec *seismic.Record, geom *seismic.Geometry) ([]int, error) {
	if gs, ok := p.strategy.(GeometryStrategy); ok {
		if geom == nil {
			return nil, ErrMissingGeometry
		}
		return gs.PickWithGeometry(rec, geom)
	}
	return p.strategy.Pick(rec)
}

// RunMilliseconds is Run with picks converted to milliseconds. Traces
// without a pick map to NaN.
func (p *Picker) RunMilliseconds(rec *seismic.Record, geom *seismic.Geometry) ([]float64, error) {
	idx, err := p.Run(rec, geom)
	if err != nil {
		return nil, err
	}
	return picks.ToMilliseconds(idx, p.cfg.SampleRate), nil
}
