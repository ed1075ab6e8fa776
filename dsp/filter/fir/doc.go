// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line. Filters built with [NewMovingAverage]
// (or any kernel whose taps are all equal) switch to a running-sum update and
// cost O(1) per sample regardless of length, which is what the STA/LTA ratio
// filter relies on for long-term windows of several hundred samples.
//
// A Filter carries state and must not be shared between goroutines.
package fir
