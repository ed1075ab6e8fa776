package seismic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadCSV reads a record stored as comma-separated values, one line per time
// sample and one column per trace. Lines starting with '#' are ignored.
func ReadCSV(r io.Reader) (*Record, error) {
	rows, err := readFloatRows(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return FromRows(rows)
}

// ReadGeometryCSV reads sensor coordinates, one line per sensor.
func ReadGeometryCSV(r io.Reader) (*Geometry, error) {
	rows, err := readFloatRows(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGeometry, err)
	}
	return NewGeometry(rows)
}

// WriteCSV writes rec in the layout read by [ReadCSV].
func WriteCSV(w io.Writer, rec *Record) error {
	if err := Validate(rec); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	row := make([]string, rec.Traces())
	for i := range rec.Samples() {
		for j := range row {
			row[j] = strconv.FormatFloat(rec.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGeometryCSV writes g in the layout read by [ReadGeometryCSV].
func WriteGeometryCSV(w io.Writer, g *Geometry) error {
	cw := csv.NewWriter(w)
	row := make([]string, g.Dim())
	for i := range g.Len() {
		for k, c := range g.Coord(i) {
			row[k] = strconv.FormatFloat(c, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Load reads a record and, if geometryPath is not empty, its geometry. The
// geometry is checked against the record.
func Load(recordPath, geometryPath string) (*Record, *Geometry, error) {
	rec, err := loadFile(recordPath, ReadCSV)
	if err != nil {
		return nil, nil, err
	}
	if geometryPath == "" {
		return rec, nil, nil
	}
	geom, err := loadFile(geometryPath, ReadGeometryCSV)
	if err != nil {
		return nil, nil, err
	}
	if err := geom.Check(rec); err != nil {
		return nil, nil, err
	}
	return rec, geom, nil
}

func loadFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func readFloatRows(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows [][]float64
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		row := make([]float64, len(fields))
		for k, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", line, k+1, err)
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
