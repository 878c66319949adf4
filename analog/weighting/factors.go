package weighting

import (
	"math"

	"github.com/cwbudde/algo-analog/analog/term"
)

// The generators below return the ordered sequence of elementary
// first-order (and for D, one second-order) factors whose product forms
// the unnormalized weighting curve. A highpass-like pole at omega
// contributes s/(s+omega); a derivative-compensating pole contributes the
// reciprocal 1/(s+omega). A-weighting and B-weighting extend the
// C-weighting chain, so the C factors are shared structurally.

// highpassPole returns s / (s + omega).
func highpassPole(omega float64) term.Term {
	return term.Quotient{
		Numerator:   term.Polynomial{Coefficients: []complex128{1, 0}},
		Denominator: term.Polynomial{Coefficients: []complex128{1, complex(omega, 0)}},
	}
}

// lowpassPole returns 1 / (s + omega).
func lowpassPole(omega complex128) term.Term {
	return term.Invert(term.Polynomial{Coefficients: []complex128{1, omega}})
}

// aFactors yields the A-weighting chain: the two mid-frequency poles f_2
// and f_3 from IEC 61672-1:2013 Appendix E.3, followed by the C-weighting
// factors.
func aFactors(fr float64) []term.Term {
	fa := math.Pow(10, 2.45) // f_A in IEC 61672-1:2013, Appendix E.3
	root5 := math.Sqrt(5) / 2
	f2 := (1.5 - root5) * fa // f_2 in IEC 61672-1
	f3 := (1.5 + root5) * fa // f_3 in IEC 61672-1

	factors := []term.Term{
		highpassPole(2 * math.Pi * f2),
		highpassPole(2 * math.Pi * f3),
	}
	return append(factors, cFactors(fr)...)
}

// bFactors yields the B-weighting chain: the rounded 158.5 Hz pole from
// the standard, followed by the C-weighting factors. The poles near
// 20.6 Hz and 12.2 kHz inside the C chain use the exact closed-form
// frequencies.
func bFactors(fr float64) []term.Term {
	f5 := 158.5

	factors := []term.Term{
		highpassPole(2 * math.Pi * f5),
	}
	return append(factors, cFactors(fr)...)
}

// cFactors yields the C-weighting chain: double poles at f_1 and f_4,
// computed from the closed-form expressions in IEC 61672-1:2013,
// Appendix E.2. Each double pole contributes one highpass-like factor and
// one derivative-compensating factor.
func cFactors(fr float64) []term.Term {
	fl := math.Pow(10, 1.5) // f_L in IEC 61672-1:2013, Appendix E.2
	fh := math.Pow(10, 3.9) // f_H in IEC 61672-1
	d := math.Sqrt(0.5)     // D in IEC 61672-1
	fr2 := fr * fr
	fl2 := fl * fl
	fh2 := fh * fh
	c := fl2 * fh2 // c in IEC 61672-1
	b := (fr2 + c/fr2 - d*(fl2+fh2)) / (1 - d) // b in IEC 61672-1
	root := math.Sqrt(b*b - 4*c)
	f1 := math.Sqrt((-b - root) / 2) // f_1 in IEC 61672-1
	f4 := math.Sqrt((-b + root) / 2) // f_4 in IEC 61672-1
	s1 := 2 * math.Pi * f1
	s4 := 2 * math.Pi * f4

	return []term.Term{
		highpassPole(s1),
		lowpassPole(complex(s1, 0)),
		highpassPole(s4),
		lowpassPole(complex(s4, 0)),
	}
}

// dFactors yields the D-weighting chain. The pole and zero frequencies
// are the roots of the quartic polynomials in the defining standard.
func dFactors() []term.Term {
	const (
		a = 1037918.48
		b = 1080768.16
		c = 9837328.0
		d = 11723776.0
		e = 79919.29
		f = 1345600.0
	)
	u := 2 * math.Pi * math.Sqrt(e)
	v := 2 * math.Pi * math.Sqrt(f)
	w := 2 * math.Pi * math.Sqrt(b)
	x := 2 * math.Pi * math.Sqrt(a)
	y := 2 * math.Pi * math.Sqrt(d)
	z := 2 * math.Pi * math.Sqrt(c)

	return []term.Term{
		highpassPole(u),
		lowpassPole(complex(v, 0)),
		term.Quotient{
			Numerator:   term.Polynomial{Coefficients: []complex128{1, complex(w, 0), complex(x*x, 0)}},
			Denominator: term.Polynomial{Coefficients: []complex128{1, complex(y, 0), complex(z*z, 0)}},
		},
	}
}

// uFactors yields the U-weighting chain: a double real pole at 12.2 kHz
// and two conjugate pairs of complex poles.
func uFactors() []term.Term {
	s1 := complex(2*math.Pi*12200, 0)
	s3 := 2 * math.Pi * complex(7850, -8800)
	s4 := 2 * math.Pi * complex(7850, 8800)
	s5 := 2 * math.Pi * complex(2900, -12150)
	s6 := 2 * math.Pi * complex(2900, 12150)

	return []term.Term{
		lowpassPole(s1),
		lowpassPole(s1),
		lowpassPole(s3),
		lowpassPole(s4),
		lowpassPole(s5),
		lowpassPole(s6),
	}
}
