// Package term implements an expression-tree algebra for rational
// transfer functions in the complex frequency variable s.
//
// A [Term] is one node of such a tree. The variant set is closed: exactly
// nine node kinds exist (Constant, Polynomial, Exp, Absolute, Negative,
// Sum, Difference, Product, Quotient), and both evaluation and
// serialization dispatch over them exhaustively. Terms are immutable once
// constructed; sub-terms may be shared between trees, and evaluation is a
// pure function of the inputs, so concurrent evaluation needs no locking.
//
// Terms are sampled with s = j*2*pi*f for a real frequency f in Hz, either
// at a single frequency with [EvaluateAt] or over a frequency array with
// [Evaluate]. A [Product] with the Transform flag set substitutes 1/s for
// s before evaluating its children, which converts a lowpass prototype
// into a highpass filter without re-deriving pole formulas. At f = 0 the
// substitution would divide by zero, so transformed results are defined
// to be 0 there.
//
// Division inside a [Quotient] is ordinary complex division: a zero
// denominator yields infinities or NaN, which propagate to the caller
// instead of raising an error.
package term
