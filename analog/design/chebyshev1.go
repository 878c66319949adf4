package design

import (
	"math"

	"github.com/cwbudde/algo-analog/analog/filter"
	"github.com/cwbudde/algo-analog/analog/term"
)

// chebyshev1 assembles the Chebyshev Type 1 transfer function. Like the
// Butterworth builder, it collects one second-order polynomial factor per
// conjugate pole pair (plus a first-order factor for odd orders) and
// inverts the product.
func chebyshev1(cutoffFrequency, ripple float64, order int, highpass bool) term.Term {
	k := FrequencyScaling(cutoffFrequency, highpass)
	k2 := k * k

	g := math.Asinh(1/math.Sqrt(math.Pow(10, math.Abs(ripple)/10)-1)) / float64(order)
	sinhg := math.Sinh(g)
	cosh2g := math.Cosh(g) * math.Cosh(g)

	var factors []term.Term
	if order%2 == 0 {
		for i := 1; i <= order/2; i++ {
			cos := math.Cos(float64(2*i-1) * math.Pi / float64(2*order))
			a2 := 1 / (cosh2g - cos*cos)
			a1 := 2 * a2 * sinhg * cos
			factors = append(factors, poly(a2*k2, a1*k, 1))
		}
	} else {
		factors = append(factors, poly(k/sinhg, 1))
		for i := 2; i <= (order+1)/2; i++ {
			cos := math.Cos(float64(i-1) * math.Pi / float64(order))
			a2 := 1 / (cosh2g - cos*cos)
			a1 := 2 * a2 * sinhg * cos
			factors = append(factors, poly(a2*k2, a1*k, 1))
		}
	}

	return term.Invert(term.Product{Terms: factors, Transform: highpass})
}

// Chebyshev1 is a Chebyshev Type 1 roll-off filter. It additionally
// carries the configured pass-band ripple.
type Chebyshev1 struct {
	*filter.Rolloff

	ripple float64
}

// NewChebyshev1 designs a Chebyshev Type 1 filter with the given
// pass-band ripple in dB.
//
// The cutoff-frequency definition differs from Butterworth: the magnitude
// at the cutoff equals the ripple floor for odd orders and 1.0 for even
// orders, rather than -3 dB. With ripple 0 the design degenerates to a
// Butterworth filter, which jumps to the -3 dB cutoff definition; a
// Chebyshev filter with an arbitrarily small but non-zero ripple therefore
// has a noticeably different effective cutoff than one with ripple exactly
// 0. This discontinuity is inherent to the classical formulation.
func NewChebyshev1(cutoffFrequency, ripple float64, order int, highpass bool) *Chebyshev1 {
	var transferFunction term.Term
	if ripple == 0 {
		transferFunction = butterworth(cutoffFrequency, order, highpass)
	} else {
		transferFunction = chebyshev1(cutoffFrequency, ripple, order, highpass)
	}

	return &Chebyshev1{
		Rolloff: filter.NewRolloff(transferFunction, "Chebyshev 1", cutoffFrequency, order, highpass),
		ripple:  ripple,
	}
}

// Ripple returns the configured pass-band ripple in dB.
func (c *Chebyshev1) Ripple() float64 {
	return c.ripple
}
