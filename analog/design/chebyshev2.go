package design

import (
	"math"

	"github.com/cwbudde/algo-analog/analog/filter"
	"github.com/cwbudde/algo-analog/analog/term"
)

// chebyshev2 assembles the Chebyshev Type 2 (inverse Chebyshev) transfer
// function. Unlike Type 1, each conjugate pole pair comes with a pair of
// finite zeros on the imaginary axis at s = +-j/(sin(theta)*k), so every
// factor is a quotient of a zero polynomial over a pole polynomial. The
// quotients already have the right asymptotic shape, so the product is
// not inverted.
func chebyshev2(cutoffFrequency, ripple float64, order int, highpass bool) term.Term {
	k := FrequencyScaling(cutoffFrequency, highpass)
	k2 := k * k

	lambda := math.Pow(10, math.Abs(ripple)/20)
	g := math.Asinh(math.Sqrt(lambda*lambda-1)) / float64(order)
	sinhg := math.Sinh(g)
	cosh2g := math.Cosh(g) * math.Cosh(g)

	pair := func(cos, sin float64) term.Term {
		zeros := poly(sin*sin*k2, 0, 1)
		poles := poly((cosh2g-cos*cos)*k2, 2*sinhg*cos*k, 1)
		return term.Quotient{Numerator: zeros, Denominator: poles}
	}

	var factors []term.Term
	if order%2 == 0 {
		for i := 1; i <= order/2; i++ {
			angle := float64(2*i-1) * math.Pi / float64(2*order)
			factors = append(factors, pair(math.Cos(angle), math.Sin(angle)))
		}
	} else {
		factors = append(factors, term.Quotient{
			Numerator:   term.Constant{Value: 1},
			Denominator: poly(sinhg*k, 1),
		})
		for i := 2; i <= (order+1)/2; i++ {
			angle := float64(i-1) * math.Pi / float64(order)
			factors = append(factors, pair(math.Cos(angle), math.Sin(angle)))
		}
	}

	return term.Product{Terms: factors, Transform: highpass}
}

// Chebyshev2 is a Chebyshev Type 2 roll-off filter. It additionally
// carries the configured stop-band attenuation.
type Chebyshev2 struct {
	*filter.Rolloff

	ripple float64
}

// NewChebyshev2 designs a Chebyshev Type 2 filter. The ripple parameter
// specifies the stop-band attenuation in dB: beyond the cutoff frequency
// the magnitude never exceeds 10^(-|ripple|/20), and it equals that
// ceiling exactly at the cutoff.
func NewChebyshev2(cutoffFrequency, ripple float64, order int, highpass bool) *Chebyshev2 {
	return &Chebyshev2{
		Rolloff: filter.NewRolloff(
			chebyshev2(cutoffFrequency, ripple, order, highpass),
			"Chebyshev 2",
			cutoffFrequency, order, highpass,
		),
		ripple: ripple,
	}
}

// Ripple returns the configured stop-band attenuation in dB.
func (c *Chebyshev2) Ripple() float64 {
	return c.ripple
}
