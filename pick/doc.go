// Package pick implements first-break picking strategies for seismic
// records.
//
// Three sibling strategies are provided:
//
//   - Threshold picks the first sample whose magnitude exceeds a fixed level.
//   - STALTA picks the first sample past the stabilisation offset whose
//     short-term/long-term average ratio exceeds a trigger level.
//   - ModelDriven runs STALTA, fits a polynomial travel-time curve to the
//     near-source picks and re-searches every trace in a window around the
//     curve's prediction.
//
// Every strategy returns one index per trace, seismic.NoPick when nothing
// was detected. Traces are processed concurrently; the worker count never
// changes the result.
//
// Picker wraps a strategy so callers can run any of them through one entry
// point, supplying geometry only when the strategy needs it.
package pick
