package design

import (
	"github.com/cwbudde/algo-analog/analog/filter"
	"github.com/cwbudde/algo-analog/analog/term"
)

// NewDerivative creates a filter with the transfer function H(s) = s.
// Multiplying a spectrum with it is equivalent to a time-domain
// derivative, up to a constant scaling factor.
func NewDerivative() *filter.Filter {
	return filter.New(
		[]term.Term{term.Polynomial{Coefficients: []complex128{1, 0}}},
		[]string{"Derivative"},
	)
}
