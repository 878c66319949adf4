package design

import (
	"github.com/cwbudde/algo-analog/analog/filter"
	"github.com/cwbudde/algo-analog/analog/term"
)

// bessel assembles the Bessel transfer function as the inverse of a
// single reverse Bessel polynomial, normalized so that the constant
// coefficient is 1. The transfer function is not decomposed into
// second-order sections, so very high orders may suffer from numerical
// inaccuracies at high frequencies.
func bessel(cutoffFrequency float64, order int, highpass bool) term.Term {
	k := FrequencyScaling(cutoffFrequency, highpass)

	coefficients := make([]float64, 0, order+1)
	c0 := factorial(2*order) / (pow2(order) * factorial(order))
	for i := order; i >= 1; i-- {
		oi := order - i
		c := factorial(order+oi) / (pow2(oi) * factorial(i) * factorial(oi))
		coefficients = append(coefficients, c/c0*powf(k, i))
	}
	coefficients = append(coefficients, 1)

	return term.Invert(term.Product{
		Terms:     []term.Term{poly(coefficients...)},
		Transform: highpass,
	})
}

// NewBessel designs a Bessel filter.
//
// Bessel filters are optimized for a flat group delay in the pass band
// rather than for a steep transition. Their cutoff frequency bounds the
// region of constant group delay instead of marking a -3 dB point, so it
// usually has to be chosen considerably lower than for the other filter
// families (for highpasses, the other way around).
func NewBessel(cutoffFrequency float64, order int, highpass bool) *filter.Rolloff {
	return filter.NewRolloff(
		bessel(cutoffFrequency, order, highpass),
		"Bessel",
		cutoffFrequency, order, highpass,
	)
}

func factorial(n int) float64 {
	out := 1.0
	for i := 2; i <= n; i++ {
		out *= float64(i)
	}
	return out
}

func pow2(n int) float64 {
	out := 1.0
	for i := 0; i < n; i++ {
		out *= 2
	}
	return out
}

func powf(base float64, exponent int) float64 {
	out := 1.0
	for i := 0; i < exponent; i++ {
		out *= base
	}
	return out
}
