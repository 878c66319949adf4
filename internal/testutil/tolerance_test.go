package testutil

import "testing"

func TestLinearSweep(t *testing.T) {
	s := LinearSweep(0, 100, 11)
	if len(s) != 11 {
		t.Fatalf("len = %d, want 11", len(s))
	}
	if s[0] != 0 || s[10] != 100 {
		t.Fatalf("endpoints = %v, %v, want 0, 100", s[0], s[10])
	}
}

func TestLogSweep(t *testing.T) {
	s := LogSweep(10, 1000, 3)
	RequireSliceNearlyEqual(t, s, []float64{10, 100, 1000}, 1e-9)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, 1, -1, 1e300})
}
