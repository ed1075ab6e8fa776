// Package buffer provides reusable float64 series for per-trace scratch
// work. Pickers derive a ratio series for every trace they scan; drawing
// those from a Pool keeps concurrent picking from allocating one series per
// trace.
package buffer
