package design

import (
	"math"

	"github.com/cwbudde/algo-analog/analog/term"
)

// FrequencyScaling returns the scale factor k that the pole/zero formulas
// substitute for the unit scale of the Laplace variable, moving the
// normalized prototype (cutoff 1 rad/s) to the desired cutoff frequency.
//
// For a lowpass this is 1/(2*pi*cutoffFrequency), so that k*s reaches
// magnitude 1 at the cutoff. For a highpass it is 2*pi*cutoffFrequency,
// because the lowpass-to-highpass transform substitutes 1/s and the
// factor k*(1/s) must reach magnitude 1 there instead. The transform
// itself is requested separately via the Transform flag on the assembled
// [term.Product].
func FrequencyScaling(cutoffFrequency float64, highpass bool) float64 {
	if highpass {
		return 2 * math.Pi * cutoffFrequency
	}
	return 1 / (2 * math.Pi * cutoffFrequency)
}

// poly builds a real-coefficient polynomial term, highest degree first.
func poly(coefficients ...float64) term.Polynomial {
	out := make([]complex128, len(coefficients))
	for i, c := range coefficients {
		out[i] = complex(c, 0)
	}
	return term.Polynomial{Coefficients: out}
}
