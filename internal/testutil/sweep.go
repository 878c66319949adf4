package testutil

import "gonum.org/v1/gonum/floats"

// LinearSweep returns points equally spaced frequencies from lo to hi,
// inclusive.
func LinearSweep(lo, hi float64, points int) []float64 {
	return floats.Span(make([]float64, points), lo, hi)
}

// LogSweep returns points logarithmically spaced frequencies from lo to
// hi, inclusive. lo and hi must be positive.
func LogSweep(lo, hi float64, points int) []float64 {
	return floats.LogSpan(make([]float64, points), lo, hi)
}
