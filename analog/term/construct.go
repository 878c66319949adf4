package term

import "math/cmplx"

// The constructors in this file replace the operator sugar of interactive
// algebra systems (~t, -t, |t|, a*b) with named functions. They apply the
// obvious algebraic shortcuts for constants and quotients; everything else
// is plain node construction.

// Invert returns 1/t.
//
// Inverting a constant folds into a new constant, inverting a quotient
// swaps numerator and denominator, and inverting an exponential negates
// the exponent. All other terms become Quotient(Constant(1), t).
func Invert(t Term) Term {
	switch v := t.(type) {
	case Constant:
		return Constant{Value: 1 / v.Value}
	case Quotient:
		return Quotient{Numerator: v.Denominator, Denominator: v.Numerator}
	case Exp:
		return Exp{Exponent: Negate(v.Exponent)}
	default:
		return Quotient{Numerator: Constant{Value: 1}, Denominator: t}
	}
}

// Negate returns -t.
func Negate(t Term) Term {
	switch v := t.(type) {
	case Constant:
		return Constant{Value: -v.Value}
	case Negative:
		return v.Value
	default:
		return Negative{Value: t}
	}
}

// Abs returns |t|.
func Abs(t Term) Term {
	switch v := t.(type) {
	case Constant:
		return Constant{Value: complex(cmplx.Abs(v.Value), 0)}
	case Absolute:
		return v
	default:
		return Absolute{Value: t}
	}
}

// Add returns the sum of the given terms.
func Add(terms ...Term) Term {
	return Sum{Terms: terms}
}

// Subtract returns the first term minus all remaining ones.
func Subtract(terms ...Term) Term {
	return Difference{Terms: terms}
}

// Multiply returns the product of the given terms.
func Multiply(terms ...Term) Term {
	return Product{Terms: terms}
}

// Divide returns numerator / denominator.
func Divide(numerator, denominator Term) Term {
	return Quotient{Numerator: numerator, Denominator: denominator}
}
