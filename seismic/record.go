package seismic

import "fmt"

// NoPick marks a trace on which no first break was found.
const NoPick = -1

// Record is a 2D seismic record: axis 0 is the time sample, axis 1 the trace.
type Record struct {
	samples int
	traces  int
	data    []float64 // trace-major: data[j*samples+i] is sample i of trace j
}

// NewRecord builds a record from trace-major data, where data[j*samples+i]
// is sample i of trace j. The data is copied.
func NewRecord(samples, traces int, data []float64) (*Record, error) {
	if samples <= 0 || traces <= 0 {
		return nil, fmt.Errorf("%w: shape (%d, %d) must be positive", ErrMalformedRecord, samples, traces)
	}
	if len(data) != samples*traces {
		return nil, fmt.Errorf("%w: %d values for shape (%d, %d)", ErrMalformedRecord, len(data), samples, traces)
	}
	d := make([]float64, len(data))
	copy(d, data)
	return &Record{samples: samples, traces: traces, data: d}, nil
}

// FromRows builds a record from rows of samples: rows[i][j] is sample i of
// trace j, the (samples, traces) orientation used by most exchange formats.
func FromRows(rows [][]float64) (*Record, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedRecord)
	}
	samples, traces := len(rows), len(rows[0])
	r := &Record{samples: samples, traces: traces, data: make([]float64, samples*traces)}
	for i, row := range rows {
		if len(row) != traces {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrMalformedRecord, i, len(row), traces)
		}
		for j, v := range row {
			r.data[j*samples+i] = v
		}
	}
	return r, nil
}

// FromTraces builds a record from per-trace sample slices. All traces must
// have the same, non-zero length.
func FromTraces(traces [][]float64) (*Record, error) {
	if len(traces) == 0 || len(traces[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedRecord)
	}
	samples := len(traces[0])
	r := &Record{samples: samples, traces: len(traces), data: make([]float64, 0, samples*len(traces))}
	for j, tr := range traces {
		if len(tr) != samples {
			return nil, fmt.Errorf("%w: trace %d has %d samples, want %d", ErrMalformedRecord, j, len(tr), samples)
		}
		r.data = append(r.data, tr...)
	}
	return r, nil
}

// Samples returns the number of time samples per trace.
func (r *Record) Samples() int { return r.samples }

// Traces returns the number of traces.
func (r *Record) Traces() int { return r.traces }

// Trace returns a read-only view of trace j.
func (r *Record) Trace(j int) []float64 {
	return r.data[j*r.samples : (j+1)*r.samples : (j+1)*r.samples]
}

// At returns sample i of trace j.
func (r *Record) At(i, j int) float64 {
	return r.data[j*r.samples+i]
}

// Data returns a read-only view of the trace-major sample buffer.
func (r *Record) Data() []float64 {
	return r.data
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	d := make([]float64, len(r.data))
	copy(d, r.data)
	return &Record{samples: r.samples, traces: r.traces, data: d}
}

// Validate reports whether r is a usable record.
func Validate(r *Record) error {
	if r == nil {
		return fmt.Errorf("%w: nil", ErrMalformedRecord)
	}
	if r.samples <= 0 || r.traces <= 0 || len(r.data) != r.samples*r.traces {
		return fmt.Errorf("%w: shape (%d, %d) with %d values", ErrMalformedRecord, r.samples, r.traces, len(r.data))
	}
	return nil
}
