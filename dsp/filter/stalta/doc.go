// Package stalta computes the short-term-average / long-term-average ratio
// of a single trace, the characteristic function used for first-arrival
// detection.
//
// For a trace x the ratio series is
//
//	r[n] = sta[n] / (lta[n] + Epsilon)
//
// where sta and lta are causal moving averages of |x| over the short and
// long windows (see [fir.NewMovingAverage]). History before the first sample
// is treated as zero, so lta is only fully formed from index long onwards;
// [Filter.Stable] returns that index and callers should not trust earlier
// values.
package stalta
