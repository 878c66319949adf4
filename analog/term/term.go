package term

// Term is one node of a rational-function expression tree.
//
// The interface is sealed: the nine variant types in this package are the
// only implementations, which allows evaluation and serialization to
// dispatch over them exhaustively.
type Term interface {
	isTerm()
}

// Constant is a fixed scalar, independent of the frequency.
type Constant struct {
	Value complex128
}

// Polynomial is a polynomial in s. Coefficients are ordered
// highest-degree-first and are evaluated with Horner's rule.
type Polynomial struct {
	Coefficients []complex128
}

// Exp is the complex exponential of its child term.
type Exp struct {
	Exponent Term
}

// Absolute is the magnitude of its child term.
type Absolute struct {
	Value Term
}

// Negative is the phase-inverted child term.
type Negative struct {
	Value Term
}

// Sum adds its child terms in sequence order.
type Sum struct {
	Terms []Term
}

// Difference subtracts the remaining child terms from the first one,
// in sequence order.
type Difference struct {
	Terms []Term
}

// Product multiplies its child terms in sequence order.
//
// If Transform is set, 1/s is substituted for s before evaluating every
// child. At s = 0 the result of a transformed product is defined to be 0.
type Product struct {
	Terms     []Term
	Transform bool
}

// Quotient divides the numerator term by the denominator term. A zero
// denominator produces non-finite values per ordinary complex division.
type Quotient struct {
	Numerator   Term
	Denominator Term
}

func (Constant) isTerm()   {}
func (Polynomial) isTerm() {}
func (Exp) isTerm()        {}
func (Absolute) isTerm()   {}
func (Negative) isTerm()   {}
func (Sum) isTerm()        {}
func (Difference) isTerm() {}
func (Product) isTerm()    {}
func (Quotient) isTerm()   {}
