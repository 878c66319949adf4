// Package filter provides the value objects that wrap analog
// transfer-function terms: a multi-channel [Filter] and the [Rolloff]
// specialization carrying cutoff frequency, order and highpass metadata.
//
// Unlike a sampled spectrum, a Filter holds a mathematical description of
// its frequency response, which can be evaluated at arbitrary frequencies
// or discretized into a [spectrum.Spectrum]. Filters are immutable after
// construction and safe for concurrent use.
package filter

import (
	"fmt"

	"github.com/cwbudde/algo-analog/analog/spectrum"
	"github.com/cwbudde/algo-analog/analog/term"
)

// Filter holds one transfer-function term per channel, plus a label per
// channel.
type Filter struct {
	transferFunctions []term.Term
	labels            []string
}

// New creates a filter from the given per-channel transfer functions and
// labels. Missing labels are padded with empty strings, surplus labels are
// dropped.
//
// Panics if transferFunctions is empty.
func New(transferFunctions []term.Term, labels []string) *Filter {
	if len(transferFunctions) == 0 {
		panic("filter: at least one transfer function is required")
	}
	return &Filter{
		transferFunctions: transferFunctions,
		labels:            sanitizeLabels(labels, len(transferFunctions)),
	}
}

// Channels returns the number of channels.
func (f *Filter) Channels() int {
	return len(f.transferFunctions)
}

// TransferFunctions returns the per-channel terms. The returned slice and
// the terms in it must not be modified.
func (f *Filter) TransferFunctions() []term.Term {
	return f.transferFunctions
}

// Labels returns the per-channel labels.
func (f *Filter) Labels() []string {
	return f.labels
}

// Evaluate samples every channel's transfer function at the given
// frequencies in Hz and returns one complex array per channel.
func (f *Filter) Evaluate(frequencies []float64) [][]complex128 {
	out := make([][]complex128, len(f.transferFunctions))
	for i, tf := range f.transferFunctions {
		out[i] = term.Evaluate(tf, frequencies)
	}
	return out
}

// EvaluateAt samples every channel's transfer function at a single
// frequency in Hz.
func (f *Filter) EvaluateAt(frequency float64) []complex128 {
	out := make([]complex128, len(f.transferFunctions))
	for i, tf := range f.transferFunctions {
		out[i] = term.EvaluateAt(tf, frequency)
	}
	return out
}

// Spectrum discretizes the filter on the frequency grid f_k = k*resolution
// for k = 0..length-1. Sample k of channel c equals the direct evaluation
// of channel c's term at k*resolution.
func (f *Filter) Spectrum(resolution float64, length int) (*spectrum.Spectrum, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("filter: resolution must be > 0: %v", resolution)
	}
	if length <= 0 {
		return nil, fmt.Errorf("filter: length must be > 0: %d", length)
	}

	frequencies := make([]float64, length)
	for k := range frequencies {
		frequencies[k] = float64(k) * resolution
	}

	return spectrum.New(f.Evaluate(frequencies), resolution, f.labels)
}

// sanitizeLabels pads or truncates labels to exactly n entries.
func sanitizeLabels(labels []string, n int) []string {
	out := make([]string, n)
	copy(out, labels)
	return out
}
