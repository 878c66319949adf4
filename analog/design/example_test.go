package design_test

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-analog/analog/design"
)

func ExampleNewButterworth() {
	lowpass := design.NewButterworth(1000, 4, false)

	for _, f := range []float64{0, 1000, 10000} {
		fmt.Printf("%6.0f Hz: %.4f\n", f, cmplx.Abs(lowpass.EvaluateAt(f)[0]))
	}
	// Output:
	//      0 Hz: 1.0000
	//   1000 Hz: 0.7071
	//  10000 Hz: 0.0001
}

func ExampleNewChebyshev1() {
	// 1 dB of pass-band ripple; for odd orders the magnitude at the cutoff
	// frequency equals the ripple floor.
	lowpass := design.NewChebyshev1(1000, 1, 3, false)

	fmt.Printf("%.4f\n", cmplx.Abs(lowpass.EvaluateAt(1000)[0]))
	// Output: 0.8913
}
