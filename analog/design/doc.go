// Package design builds analog filter transfer functions from classical
// closed-form pole/zero formulas.
//
// Every builder assembles a [term.Term] expression from its design
// parameters (cutoff frequency, order, ripple, lowpass/highpass flag) and
// wraps it in a [filter.Rolloff] (or plain [filter.Filter]). No builder
// validates its parameters: degenerate inputs such as order < 1 or a
// ripple that places a pole on the evaluation axis propagate as
// non-finite floating-point values when the filter is evaluated, never as
// errors. Downstream code relies on NaN propagation to detect such
// configurations.
package design
