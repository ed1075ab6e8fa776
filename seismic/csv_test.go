package seismic

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	in := "# samples x traces\n0, 0.5, -1\n1e-3,2,3\n"
	rec, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if rec.Samples() != 2 || rec.Traces() != 3 {
		t.Fatalf("shape = (%d, %d), want (2, 3)", rec.Samples(), rec.Traces())
	}
	if rec.At(1, 0) != 1e-3 || rec.At(0, 2) != -1 {
		t.Fatalf("unexpected values: %v", rec.Data())
	}
}

func TestReadCSVErrors(t *testing.T) {
	for _, in := range []string{"", "1,2\n3\n", "1,x\n"} {
		if _, err := ReadCSV(strings.NewReader(in)); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("ReadCSV(%q) = %v, want ErrMalformedRecord", in, err)
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	rec, err := FromTraces([][]float64{{0, 0.125, -3}, {1e-9, 2, 7.5}})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rec); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if got.Samples() != rec.Samples() || got.Traces() != rec.Traces() {
		t.Fatalf("shape changed: (%d, %d)", got.Samples(), got.Traces())
	}
	for i, v := range rec.Data() {
		if got.Data()[i] != v {
			t.Fatalf("value %d: got %v, want %v", i, got.Data()[i], v)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	recPath := filepath.Join(dir, "record.csv")
	geomPath := filepath.Join(dir, "geometry.csv")
	badGeomPath := filepath.Join(dir, "short.csv")

	if err := os.WriteFile(recPath, []byte("0,0\n1,1\n0,2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	g, _ := Line(2, 0, 5)
	var buf bytes.Buffer
	if err := WriteGeometryCSV(&buf, g); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(geomPath, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(badGeomPath, []byte("0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	rec, geom, err := Load(recPath, geomPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.Traces() != 2 || geom.Len() != 2 || geom.Coord(1)[0] != 5 {
		t.Fatalf("unexpected load result: traces=%d sensors=%d", rec.Traces(), geom.Len())
	}

	if _, geom, err := Load(recPath, ""); err != nil || geom != nil {
		t.Fatalf("Load without geometry: geom=%v err=%v", geom, err)
	}
	if _, _, err := Load(recPath, badGeomPath); !errors.Is(err, ErrGeometryMismatch) {
		t.Fatalf("Load mismatched: got %v, want ErrGeometryMismatch", err)
	}
	if _, _, err := Load(filepath.Join(dir, "missing.csv"), ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}
