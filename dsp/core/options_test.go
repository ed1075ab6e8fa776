package core

import (
	"runtime"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(1000), WithWorkers(3))
	if cfg.SampleRate != 1000 {
		t.Fatalf("sample rate = %v, want 1000", cfg.SampleRate)
	}
	if cfg.Workers != 3 {
		t.Fatalf("workers = %d, want 3", cfg.Workers)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithWorkers(-1), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestDefaultWorkers(t *testing.T) {
	cfg := DefaultProcessorConfig()
	if cfg.Workers != runtime.GOMAXPROCS(0) {
		t.Fatalf("workers = %d, want %d", cfg.Workers, runtime.GOMAXPROCS(0))
	}
	if cfg.SampleRate != DefaultSampleRate {
		t.Fatalf("sample rate = %v, want %v", cfg.SampleRate, float64(DefaultSampleRate))
	}
}
