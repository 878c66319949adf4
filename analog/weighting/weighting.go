// Package weighting provides the standardized frequency-weighting curves
// A, B, C, D, U (and the flat Z reference) as analog filters.
//
// Frequency weighting curves shape the magnitude response of a signal to
// approximate the frequency-dependent sensitivity of human hearing. The
// pole frequencies for A and C come from the closed-form expressions in
// IEC 61672-1; B adds a fixed pole at 158.5 Hz to the C chain, D uses the
// quartic roots of its defining standard, and U places six literal
// complex poles that suppress ultrasonic content.
//
// Every curve is normalized to exactly unity gain (0 dB) at 1 kHz. The
// normalization is not assumed from the formulas: each builder evaluates
// its unnormalized factor product at 1 kHz and divides by the result.
package weighting

import (
	"github.com/cwbudde/algo-analog/analog/filter"
	"github.com/cwbudde/algo-analog/analog/term"
)

// referenceFrequency is the 1 kHz normalization frequency of IEC 61672-1.
const referenceFrequency = 1000.0

// Type identifies a frequency weighting curve.
type Type int

const (
	// TypeA is the A-weighting curve per IEC 61672-1. It approximates
	// the 40-phon equal-loudness contour and is the most widely used
	// weighting for noise measurements.
	TypeA Type = iota

	// TypeB is the B-weighting curve. It approximates the 70-phon
	// equal-loudness contour and is rarely used in modern practice.
	TypeB

	// TypeC is the C-weighting curve per IEC 61672-1. It approximates
	// the 100-phon equal-loudness contour and is used for peak
	// measurements.
	TypeC

	// TypeD is the D-weighting curve. It was developed for aircraft
	// noise measurements.
	TypeD

	// TypeU is the U-weighting curve, used in combination with other
	// weightings to remove ultrasonic frequency content.
	TypeU

	// TypeZ is the Z-weighting (zero-weighting): unity gain at all
	// frequencies, the flat reference of IEC 61672.
	TypeZ
)

// String returns a human-readable name for the weighting type.
func (t Type) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeB:
		return "B"
	case TypeC:
		return "C"
	case TypeD:
		return "D"
	case TypeU:
		return "U"
	case TypeZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// New returns a single-channel filter implementing the given weighting
// curve, normalized to unity gain at 1 kHz.
//
// Panics on an unknown type.
func New(t Type) *filter.Filter {
	switch t {
	case TypeA:
		return newWeighting(aFactors(referenceFrequency), "A-weighting")
	case TypeB:
		return newWeighting(bFactors(referenceFrequency), "B-weighting")
	case TypeC:
		return newWeighting(cFactors(referenceFrequency), "C-weighting")
	case TypeD:
		return newWeighting(dFactors(), "D-weighting")
	case TypeU:
		return newWeighting(uFactors(), "U-weighting")
	case TypeZ:
		return filter.New([]term.Term{term.Constant{Value: 1}}, []string{"Z-weighting"})
	default:
		panic("weighting: unknown type")
	}
}

// newWeighting multiplies the elementary factors into one product,
// prefixed with the normalization constant 1/gain(1 kHz).
func newWeighting(factors []term.Term, label string) *filter.Filter {
	gain := complex(1, 0)
	for _, f := range factors {
		gain *= term.EvaluateAt(f, referenceFrequency)
	}

	terms := make([]term.Term, 0, len(factors)+1)
	terms = append(terms, term.Constant{Value: 1 / gain})
	terms = append(terms, factors...)

	return filter.New([]term.Term{term.Product{Terms: terms}}, []string{label})
}
