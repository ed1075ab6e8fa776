package testutil

import "math/rand"

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Step generates a signal at level low before onset and level high from
// onset onwards.
func Step(low, high float64, onset, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < onset {
			out[i] = low
		} else {
			out[i] = high
		}
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// ImpulseTraces returns one unit-impulse trace of the given length per
// entry of positions. A negative position yields a silent trace.
func ImpulseTraces(length int, positions []int) [][]float64 {
	out := make([][]float64, len(positions))
	for i, p := range positions {
		out[i] = Impulse(length, p)
	}
	return out
}

// SilentTraces returns count all-zero traces of the given length.
func SilentTraces(length, count int) [][]float64 {
	out := make([][]float64, count)
	for i := range out {
		out[i] = make([]float64, length)
	}
	return out
}
