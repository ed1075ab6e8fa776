package seismic

import (
	"errors"
	"testing"
)

func TestFromRows(t *testing.T) {
	rec, err := FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if rec.Samples() != 2 || rec.Traces() != 3 {
		t.Fatalf("shape = (%d, %d), want (2, 3)", rec.Samples(), rec.Traces())
	}

	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}
	for j, tr := range want {
		got := rec.Trace(j)
		for i := range tr {
			if got[i] != tr[i] {
				t.Fatalf("trace %d sample %d = %v, want %v", j, i, got[i], tr[i])
			}
			if rec.At(i, j) != tr[i] {
				t.Fatalf("At(%d, %d) = %v, want %v", i, j, rec.At(i, j), tr[i])
			}
		}
	}
}

func TestFromTracesMatchesNewRecord(t *testing.T) {
	a, err := FromTraces([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRecord(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range a.Data() {
		if b.Data()[i] != v {
			t.Fatalf("data[%d]: %v vs %v", i, v, b.Data()[i])
		}
	}
}

func TestMalformedRecords(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Record, error)
	}{
		{name: "no rows", build: func() (*Record, error) { return FromRows(nil) }},
		{name: "empty row", build: func() (*Record, error) { return FromRows([][]float64{{}}) }},
		{name: "ragged rows", build: func() (*Record, error) { return FromRows([][]float64{{1, 2}, {3}}) }},
		{name: "no traces", build: func() (*Record, error) { return FromTraces(nil) }},
		{name: "ragged traces", build: func() (*Record, error) { return FromTraces([][]float64{{1, 2}, {3}}) }},
		{name: "bad shape", build: func() (*Record, error) { return NewRecord(0, 3, nil) }},
		{name: "short data", build: func() (*Record, error) { return NewRecord(2, 2, []float64{1, 2, 3}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.build(); !errors.Is(err, ErrMalformedRecord) {
				t.Fatalf("got %v, want ErrMalformedRecord", err)
			}
		})
	}
}

func TestNewRecordCopies(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	rec, err := NewRecord(2, 2, data)
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 99
	if rec.At(0, 0) != 1 {
		t.Fatal("NewRecord did not copy its input")
	}
}

func TestClone(t *testing.T) {
	rec, err := FromTraces([][]float64{{1, 2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	c := rec.Clone()
	c.Data()[0] = 42
	if rec.At(0, 0) != 1 {
		t.Fatal("Clone shares storage with the original")
	}
}

func TestTraceViewIsBounded(t *testing.T) {
	rec, err := FromTraces([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	tr := rec.Trace(0)
	if cap(tr) != 2 {
		t.Fatalf("cap = %d, want 2", cap(tr))
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Validate(nil) = %v, want ErrMalformedRecord", err)
	}
	if err := Validate(&Record{}); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Validate(zero) = %v, want ErrMalformedRecord", err)
	}
}
