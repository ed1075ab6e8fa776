// Package signal synthesises test signals for exercising first-break
// pickers: Ricker wavelets for synthetic arrivals and white or pink Gaussian
// noise for robustness sweeps.
//
// All randomness comes from a seeded [Generator], so every sweep is
// reproducible. Pink noise is produced by spectral shaping through an FFT
// (github.com/MeKo-Christian/algo-fft).
package signal
