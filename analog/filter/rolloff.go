package filter

import "github.com/cwbudde/algo-analog/analog/term"

// Rolloff is a single-channel filter with a roll-off characteristic,
// tagged with the design parameters it was built from: cutoff frequency,
// order and lowpass/highpass orientation.
//
// The order is expected to be >= 1. Like the filter-family builders, this
// type does not validate its design parameters; degenerate values
// propagate as non-finite evaluation results instead of errors.
type Rolloff struct {
	Filter

	cutoffFrequency float64
	order           int
	highpass        bool
}

// NewRolloff creates a roll-off filter from one transfer function, its
// channel label and the design parameters.
func NewRolloff(transferFunction term.Term, label string, cutoffFrequency float64, order int, highpass bool) *Rolloff {
	return &Rolloff{
		Filter:          *New([]term.Term{transferFunction}, []string{label}),
		cutoffFrequency: cutoffFrequency,
		order:           order,
		highpass:        highpass,
	}
}

// CutoffFrequency returns the cutoff frequency in Hz.
func (r *Rolloff) CutoffFrequency() float64 {
	return r.cutoffFrequency
}

// Order returns the filter order.
func (r *Rolloff) Order() int {
	return r.order
}

// IsHighpass reports whether the lowpass-to-highpass transform was
// applied.
func (r *Rolloff) IsHighpass() bool {
	return r.highpass
}
