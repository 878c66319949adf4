package design

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-analog/internal/testutil"
)

func TestFrequencyScaling(t *testing.T) {
	testutil.RequireNearlyEqual(t, FrequencyScaling(1000, false), 1/(2*math.Pi*1000), 1e-15)
	testutil.RequireNearlyEqual(t, FrequencyScaling(1000, true), 2*math.Pi*1000, 1e-9)
}

func TestButterworthCutoffAttenuation(t *testing.T) {
	// The -3 dB point at the cutoff frequency holds for every order, for
	// lowpasses and highpasses alike.
	const fc = 1000.0
	for order := 1; order <= 8; order++ {
		for _, highpass := range []bool{false, true} {
			f := NewButterworth(fc, order, highpass)
			got := cmplx.Abs(f.EvaluateAt(fc)[0])
			testutil.RequireNearlyEqual(t, got, 1/math.Sqrt2, 1e-9)
		}
	}
}

func TestButterworthLowpassMagnitude(t *testing.T) {
	// |H(f)| = 1/sqrt(1 + (f/fc)^(2n))
	const fc = 440.0
	for _, order := range []int{1, 2, 3, 4, 5, 8} {
		f := NewButterworth(fc, order, false)
		for _, freq := range testutil.LogSweep(fc/100, fc*100, 25) {
			got := cmplx.Abs(f.EvaluateAt(freq)[0])
			want := 1 / math.Sqrt(1+math.Pow(freq/fc, float64(2*order)))
			testutil.RequireNearlyEqual(t, got, want, 1e-9*want+1e-12)
		}
	}
}

func TestButterworthPassStopExtremes(t *testing.T) {
	for order := 1; order <= 6; order++ {
		lowpass := NewButterworth(1000, order, false)
		if got := lowpass.EvaluateAt(0)[0]; got != 1 {
			t.Fatalf("order %d lowpass at DC: got %v, want exactly 1", order, got)
		}

		highpass := NewButterworth(1000, order, true)
		if got := highpass.EvaluateAt(0)[0]; got != 0 {
			t.Fatalf("order %d highpass at DC: got %v, want exactly 0", order, got)
		}
		// Far above the cutoff the highpass approaches unity gain.
		got := cmplx.Abs(highpass.EvaluateAt(1e6)[0])
		testutil.RequireNearlyEqual(t, got, 1, 1e-6)
	}
}

func TestButterworthMonotonic(t *testing.T) {
	f := NewButterworth(1000, 4, false)
	previous := math.Inf(1)
	for _, freq := range testutil.LogSweep(1, 1e6, 61) {
		magnitude := cmplx.Abs(f.EvaluateAt(freq)[0])
		if magnitude > previous+1e-12 {
			t.Fatalf("magnitude not monotonic at %v Hz: %v > %v", freq, magnitude, previous)
		}
		previous = magnitude
	}
}

func TestButterworthMetadata(t *testing.T) {
	f := NewButterworth(1000, 4, true)
	if f.CutoffFrequency() != 1000 || f.Order() != 4 || !f.IsHighpass() {
		t.Fatalf("metadata: fc=%v order=%d highpass=%v", f.CutoffFrequency(), f.Order(), f.IsHighpass())
	}
	if f.Labels()[0] != "Butterworth" {
		t.Fatalf("label = %q", f.Labels()[0])
	}
}
