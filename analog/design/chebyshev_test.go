package design

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-analog/internal/testutil"
)

func TestChebyshev1CutoffMagnitude(t *testing.T) {
	// With unity gain at DC, the magnitude at the cutoff frequency is the
	// ripple floor 10^(-r/20) for odd orders and 1.0 for even orders.
	const fc = 1000.0
	for _, ripple := range []float64{0.5, 1, 3} {
		for order := 1; order <= 6; order++ {
			f := NewChebyshev1(fc, ripple, order, false)
			got := cmplx.Abs(f.EvaluateAt(fc)[0])
			want := 1.0
			if order%2 == 1 {
				want = math.Pow(10, -ripple/20)
			}
			testutil.RequireNearlyEqual(t, got, want, 1e-9)
		}
	}
}

func TestChebyshev1HighpassCutoffMagnitude(t *testing.T) {
	const fc = 500.0
	f := NewChebyshev1(fc, 1, 3, true)
	got := cmplx.Abs(f.EvaluateAt(fc)[0])
	testutil.RequireNearlyEqual(t, got, math.Pow(10, -1.0/20), 1e-9)

	if dc := f.EvaluateAt(0)[0]; dc != 0 {
		t.Fatalf("highpass at DC: got %v, want exactly 0", dc)
	}
}

func TestChebyshev1PassBandRipple(t *testing.T) {
	// Inside the pass band the magnitude oscillates between the ripple
	// floor and 1, never exceeding either bound.
	const fc = 1000.0
	const ripple = 1.0
	floor := math.Pow(10, -ripple/20)

	f := NewChebyshev1(fc, ripple, 5, false)
	for _, freq := range testutil.LinearSweep(0, fc, 201) {
		magnitude := cmplx.Abs(f.EvaluateAt(freq)[0])
		if magnitude > 1+1e-9 || magnitude < floor-1e-9 {
			t.Fatalf("pass-band magnitude %v at %v Hz outside [%v, 1]", magnitude, freq, floor)
		}
	}
}

func TestChebyshev1ZeroRippleFallsBackToButterworth(t *testing.T) {
	frequencies := testutil.LogSweep(10, 1e5, 41)
	chebyshev := NewChebyshev1(1000, 0, 4, false)
	butterworth := NewButterworth(1000, 4, false)
	testutil.RequireComplexSliceEqual(t,
		chebyshev.Evaluate(frequencies)[0],
		butterworth.Evaluate(frequencies)[0],
	)
}

func TestChebyshev1Metadata(t *testing.T) {
	f := NewChebyshev1(1000, 3, 2, false)
	if f.Ripple() != 3 || f.Order() != 2 || f.IsHighpass() {
		t.Fatalf("metadata: ripple=%v order=%d highpass=%v", f.Ripple(), f.Order(), f.IsHighpass())
	}
	if f.Labels()[0] != "Chebyshev 1" {
		t.Fatalf("label = %q", f.Labels()[0])
	}
}

func TestChebyshev2CutoffMagnitude(t *testing.T) {
	// The cutoff frequency marks the start of the stop band: the magnitude
	// there equals the stop-band ceiling 10^(-|r|/20).
	const fc = 1000.0
	for _, ripple := range []float64{20, 40, 60} {
		for order := 1; order <= 6; order++ {
			f := NewChebyshev2(fc, ripple, order, false)
			got := cmplx.Abs(f.EvaluateAt(fc)[0])
			want := math.Pow(10, -ripple/20)
			testutil.RequireNearlyEqual(t, got, want, 1e-9*want+1e-12)
		}
	}
}

func TestChebyshev2StopBandBound(t *testing.T) {
	const fc = 1000.0
	const ripple = 40.0
	ceiling := math.Pow(10, -ripple/20)

	f := NewChebyshev2(fc, ripple, 5, false)
	for _, freq := range testutil.LogSweep(fc, fc*1000, 301) {
		magnitude := cmplx.Abs(f.EvaluateAt(freq)[0])
		if magnitude > ceiling+1e-9 {
			t.Fatalf("stop-band magnitude %v at %v Hz exceeds ceiling %v", magnitude, freq, ceiling)
		}
	}
}

func TestChebyshev2PassStopExtremes(t *testing.T) {
	for order := 1; order <= 6; order++ {
		lowpass := NewChebyshev2(1000, 40, order, false)
		if got := lowpass.EvaluateAt(0)[0]; got != 1 {
			t.Fatalf("order %d lowpass at DC: got %v, want exactly 1", order, got)
		}

		highpass := NewChebyshev2(1000, 40, order, true)
		if got := highpass.EvaluateAt(0)[0]; got != 0 {
			t.Fatalf("order %d highpass at DC: got %v, want exactly 0", order, got)
		}
		got := cmplx.Abs(highpass.EvaluateAt(1e7)[0])
		testutil.RequireNearlyEqual(t, got, 1, 1e-3)
	}
}

func TestChebyshev2Metadata(t *testing.T) {
	f := NewChebyshev2(1000, 40, 4, true)
	if f.Ripple() != 40 || f.Order() != 4 || !f.IsHighpass() {
		t.Fatalf("metadata: ripple=%v order=%d highpass=%v", f.Ripple(), f.Order(), f.IsHighpass())
	}
	if f.Labels()[0] != "Chebyshev 2" {
		t.Fatalf("label = %q", f.Labels()[0])
	}
}
