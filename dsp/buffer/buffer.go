package buffer

// Buffer holds a float64 series whose backing array survives resizing.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	return &Buffer{samples: make([]float64, max(length, 0))}
}

// Samples returns the series. The slice is only valid until the next Resize.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the series length.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the capacity of the backing array.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, reallocating only when n exceeds the
// capacity. Values carried over from earlier use are left in place.
func (b *Buffer) Resize(n int) {
	n = max(n, 0)
	if n > cap(b.samples) {
		b.samples = make([]float64, n)
		return
	}
	b.samples = b.samples[:n]
}

// Zero sets every sample to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}
