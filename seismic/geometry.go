package seismic

import (
	"fmt"
	"math"
)

// Geometry holds one coordinate row per trace, in trace order.
type Geometry struct {
	n      int
	dim    int
	coords []float64 // row-major: coords[i*dim+k]
}

// NewGeometry builds a geometry from per-sensor coordinate rows. Every row
// must have the same, non-zero dimension and hold finite values.
func NewGeometry(coords [][]float64) (*Geometry, error) {
	if len(coords) == 0 || len(coords[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedGeometry)
	}
	dim := len(coords[0])
	g := &Geometry{n: len(coords), dim: dim, coords: make([]float64, 0, len(coords)*dim)}
	for i, row := range coords {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: row %d has %d coordinates, want %d", ErrMalformedGeometry, i, len(row), dim)
		}
		for k, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d coordinate %d is %v", ErrMalformedGeometry, i, k, v)
			}
		}
		g.coords = append(g.coords, row...)
	}
	return g, nil
}

// Line returns a geometry of n sensors along the x axis, spaced by spacing
// and starting at offset.
func Line(n int, offset, spacing float64) (*Geometry, error) {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{offset + float64(i)*spacing}
	}
	return NewGeometry(rows)
}

// Len returns the number of sensors.
func (g *Geometry) Len() int { return g.n }

// Dim returns the number of coordinates per sensor.
func (g *Geometry) Dim() int { return g.dim }

// Coord returns a read-only view of sensor i's coordinates.
func (g *Geometry) Coord(i int) []float64 {
	return g.coords[i*g.dim : (i+1)*g.dim : (i+1)*g.dim]
}

// Check reports an error unless g has one row per trace of r.
func (g *Geometry) Check(r *Record) error {
	if g == nil {
		return fmt.Errorf("%w: nil", ErrMalformedGeometry)
	}
	if err := Validate(r); err != nil {
		return err
	}
	if g.n != r.Traces() {
		return fmt.Errorf("%w: %d sensors for %d traces", ErrGeometryMismatch, g.n, r.Traces())
	}
	return nil
}

// SourceIndex returns the sensor with the earliest valid pick. NoPick
// entries never qualify; ties resolve to the lowest trace index.
func (g *Geometry) SourceIndex(picks []int) (int, error) {
	if len(picks) != g.n {
		return 0, fmt.Errorf("%w: %d picks for %d sensors", ErrGeometryMismatch, len(picks), g.n)
	}
	src := -1
	for i, p := range picks {
		if p < 0 {
			continue
		}
		if src < 0 || p < picks[src] {
			src = i
		}
	}
	if src < 0 {
		return 0, ErrNoValidPick
	}
	return src, nil
}

// DistancesFromSource infers the source sensor from picks (see
// [Geometry.SourceIndex]) and returns the Euclidean distance from it to
// every sensor.
func (g *Geometry) DistancesFromSource(picks []int) ([]float64, error) {
	src, err := g.SourceIndex(picks)
	if err != nil {
		return nil, err
	}
	return g.DistancesFrom(src), nil
}

// DistancesFrom returns the Euclidean distance from sensor src to every
// sensor.
func (g *Geometry) DistancesFrom(src int) []float64 {
	origin := g.Coord(src)
	out := make([]float64, g.n)
	for i := range out {
		var ss float64
		for k, c := range g.Coord(i) {
			d := c - origin[k]
			ss += d * d
		}
		out[i] = math.Sqrt(ss)
	}
	return out
}
