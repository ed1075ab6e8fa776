// Package seismic defines the data model shared by the pickers: a 2D
// [Record] of samples x traces, the per-trace sensor [Geometry], and the
// [NoPick] sentinel used in pick-index slices.
//
// A Record is immutable once built. Traces are stored contiguously so that
// [Record.Trace] returns a view without copying; callers must not modify it.
//
// The geometry also provides the distance estimator used by geometry-aware
// pickers: [Geometry.SourceIndex] locates the sensor with the earliest valid
// pick and [Geometry.DistancesFromSource] measures every sensor against it.
package seismic
