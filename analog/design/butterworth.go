package design

import (
	"math"

	"github.com/cwbudde/algo-analog/analog/filter"
	"github.com/cwbudde/algo-analog/analog/term"
)

// butterworth assembles the Butterworth transfer function as one
// second-order polynomial factor per conjugate pole pair (plus one
// first-order factor for odd orders). The assembled product equals the
// reciprocal transfer function, so it is inverted at the end.
func butterworth(cutoffFrequency float64, order int, highpass bool) term.Term {
	k := FrequencyScaling(cutoffFrequency, highpass)
	k2 := k * k

	var factors []term.Term
	if order%2 == 0 {
		for i := 1; i <= order/2; i++ {
			b1 := 2 * math.Cos(float64(2*i-1)*math.Pi/float64(2*order))
			factors = append(factors, poly(k2, b1*k, 1))
		}
	} else {
		factors = append(factors, poly(k, 1))
		for i := 2; i <= (order+1)/2; i++ {
			b1 := 2 * math.Cos(float64(i-1)*math.Pi/float64(order))
			factors = append(factors, poly(k2, b1*k, 1))
		}
	}

	return term.Invert(term.Product{Terms: factors, Transform: highpass})
}

// NewButterworth designs a Butterworth filter.
//
// Butterworth filters are optimized for a fast transition between pass
// band and stop band while keeping the magnitude response monotonic. The
// magnitude at the cutoff frequency is exactly 1/sqrt(2) (-3 dB) for
// every order.
func NewButterworth(cutoffFrequency float64, order int, highpass bool) *filter.Rolloff {
	return filter.NewRolloff(
		butterworth(cutoffFrequency, order, highpass),
		"Butterworth",
		cutoffFrequency, order, highpass,
	)
}
