package term

import "testing"

func benchmarkTree() Term {
	// An order-8 cascade of biquad sections, roughly the shape a filter
	// design produces.
	factors := make([]Term, 4)
	for i := range factors {
		factors[i] = Polynomial{Coefficients: []complex128{2.5e-8, 1.6e-4 * complex(float64(i+1), 0), 1}}
	}
	return Invert(Product{Terms: factors})
}

func BenchmarkEvaluate(b *testing.B) {
	tree := benchmarkTree()
	frequencies := make([]float64, 4096)
	for i := range frequencies {
		frequencies[i] = float64(i) * 5.0
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Evaluate(tree, frequencies)
	}
}

func BenchmarkEvaluateTransformed(b *testing.B) {
	inner := benchmarkTree().(Quotient)
	tree := Quotient{
		Numerator:   inner.Numerator,
		Denominator: Product{Terms: inner.Denominator.(Product).Terms, Transform: true},
	}
	frequencies := make([]float64, 4096)
	for i := range frequencies {
		frequencies[i] = float64(i) * 5.0
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Evaluate(tree, frequencies)
	}
}

func BenchmarkEvaluateAt(b *testing.B) {
	tree := benchmarkTree()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EvaluateAt(tree, 1000)
	}
}
