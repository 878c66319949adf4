package design

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-analog/internal/testutil"
)

func TestBesselPassStopExtremes(t *testing.T) {
	for order := 1; order <= 5; order++ {
		lowpass := NewBessel(1000, order, false)
		if got := lowpass.EvaluateAt(0)[0]; got != 1 {
			t.Fatalf("order %d lowpass at DC: got %v, want exactly 1", order, got)
		}

		highpass := NewBessel(1000, order, true)
		if got := highpass.EvaluateAt(0)[0]; got != 0 {
			t.Fatalf("order %d highpass at DC: got %v, want exactly 0", order, got)
		}
	}
}

func TestBesselOrderOneIsFirstOrderLowpass(t *testing.T) {
	// The reverse Bessel polynomial of degree 1 is k*s + 1, so the filter
	// degenerates to the common first-order lowpass with its -3 dB cutoff.
	f := NewBessel(1000, 1, false)
	got := cmplx.Abs(f.EvaluateAt(1000)[0])
	testutil.RequireNearlyEqual(t, got, 1/math.Sqrt2, 1e-9)
}

func TestBesselGroupDelayFlatness(t *testing.T) {
	// The defining property: inside the pass band the group delay is
	// approximately constant. Compare the delay near DC with the delay at
	// half the cutoff frequency via a phase difference quotient.
	const fc = 1000.0
	f := NewBessel(fc, 4, false)

	delay := func(freq float64) float64 {
		const df = 0.1
		p1 := cmplx.Phase(f.EvaluateAt(freq)[0])
		p2 := cmplx.Phase(f.EvaluateAt(freq + df)[0])
		return -(p2 - p1) / (2 * math.Pi * df)
	}

	reference := delay(1)
	at := delay(fc / 2)
	if math.Abs(at-reference)/reference > 0.02 {
		t.Fatalf("group delay at fc/2 deviates: %v vs %v near DC", at, reference)
	}
}

func TestBesselMonotonicRolloff(t *testing.T) {
	f := NewBessel(1000, 3, false)
	previous := math.Inf(1)
	for _, freq := range testutil.LogSweep(1, 1e6, 61) {
		magnitude := cmplx.Abs(f.EvaluateAt(freq)[0])
		if magnitude > previous+1e-12 {
			t.Fatalf("magnitude not monotonic at %v Hz: %v > %v", freq, magnitude, previous)
		}
		previous = magnitude
	}
}

func TestDerivative(t *testing.T) {
	f := NewDerivative()
	if f.Labels()[0] != "Derivative" {
		t.Fatalf("label = %q", f.Labels()[0])
	}
	if got := f.EvaluateAt(0)[0]; got != 0 {
		t.Fatalf("at DC: got %v, want 0", got)
	}
	for _, freq := range []float64{1, 100, 1000} {
		got := f.EvaluateAt(freq)[0]
		want := complex(0, 2*math.Pi*freq)
		testutil.RequireComplexNearlyEqual(t, got, want, 1e-9)
	}
}
