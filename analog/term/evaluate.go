package term

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

// Evaluate samples the transfer function t at the given frequencies in Hz,
// substituting s = j*2*pi*f. The result has one complex value per input
// frequency.
func Evaluate(t Term, frequencies []float64) []complex128 {
	return evaluate(t, newGrid(frequencies))
}

// EvaluateAt samples the transfer function t at a single frequency in Hz.
func EvaluateAt(t Term, frequency float64) complex128 {
	return evaluate(t, newGrid([]float64{frequency}))[0]
}

// grid holds the precomputed values of the frequency variable for one
// evaluation pass. The reciprocal grid for the lowpass-to-highpass
// transform is created lazily and cached, so nested transformed products
// toggle between the two without recomputation.
type grid struct {
	s       []complex128
	origin  *grid // set on a reciprocal grid, pointing back
	inverse *grid
	invalid []int // indices where s == 0, only set on a reciprocal grid
}

func newGrid(frequencies []float64) *grid {
	s := make([]complex128, len(frequencies))
	for i, f := range frequencies {
		s[i] = complex(0, 2*math.Pi*f)
	}
	return &grid{s: s}
}

// transform returns the grid with 1/s substituted for s. Transforming a
// reciprocal grid returns the original one.
func (g *grid) transform() *grid {
	if g.origin != nil {
		return g.origin
	}
	if g.inverse == nil {
		inv := &grid{s: make([]complex128, len(g.s)), origin: g}
		for i, v := range g.s {
			if v == 0 {
				// placeholder, fixed to 0 after evaluation
				inv.invalid = append(inv.invalid, i)
				continue
			}
			inv.s[i] = 1 / v
		}
		g.inverse = inv
	}
	return g.inverse
}

// fix zeroes the samples that a lowpass-to-highpass transform has made
// invalid, because 1/s is a division by zero at s = 0. Once a transform
// has been triggered on a grid, the fix applies to every term evaluated
// on it: this is what turns the reciprocal of a transformed product into
// an exact 0 at f = 0 instead of an infinity.
func (g *grid) fix(out []complex128) []complex128 {
	if g.origin != nil {
		for _, i := range g.invalid {
			out[i] = 0
		}
		return out
	}
	if g.inverse != nil {
		return g.inverse.fix(out)
	}
	return out
}

// evaluate computes one term on the given grid. The switch is exhaustive
// over the sealed variant set; evaluation order within Sum, Difference and
// Product follows the child sequence, so floating-point reduction order is
// deterministic.
func evaluate(t Term, g *grid) []complex128 {
	switch v := t.(type) {
	case Constant:
		out := make([]complex128, len(g.s))
		for i := range out {
			out[i] = v.Value
		}
		return g.fix(out)

	case Polynomial:
		out := make([]complex128, len(g.s))
		for i, s := range g.s {
			var acc complex128
			for _, c := range v.Coefficients {
				acc = acc*s + c
			}
			out[i] = acc
		}
		return g.fix(out)

	case Exp:
		out := evaluate(v.Exponent, g)
		for i, x := range out {
			out[i] = cmplx.Exp(x)
		}
		return g.fix(out)

	case Absolute:
		out := evaluate(v.Value, g)
		for i, x := range out {
			out[i] = complex(cmplx.Abs(x), 0)
		}
		return g.fix(out)

	case Negative:
		out := evaluate(v.Value, g)
		cmplxs.Scale(-1, out)
		return g.fix(out)

	case Sum:
		if len(v.Terms) == 0 {
			return g.fix(make([]complex128, len(g.s)))
		}
		out := evaluate(v.Terms[0], g)
		for _, child := range v.Terms[1:] {
			cmplxs.Add(out, evaluate(child, g))
		}
		return g.fix(out)

	case Difference:
		if len(v.Terms) == 0 {
			return g.fix(make([]complex128, len(g.s)))
		}
		out := evaluate(v.Terms[0], g)
		for _, child := range v.Terms[1:] {
			cmplxs.Sub(out, evaluate(child, g))
		}
		return g.fix(out)

	case Product:
		if v.Transform {
			g = g.transform()
		}
		if len(v.Terms) == 0 {
			return g.fix(make([]complex128, len(g.s)))
		}
		out := evaluate(v.Terms[0], g)
		for _, child := range v.Terms[1:] {
			cmplxs.Mul(out, evaluate(child, g))
		}
		return g.fix(out)

	case Quotient:
		out := evaluate(v.Numerator, g)
		cmplxs.Div(out, evaluate(v.Denominator, g))
		return g.fix(out)

	default:
		// unreachable: the variant set is sealed
		panic("term: unknown term variant")
	}
}
