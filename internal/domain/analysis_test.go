package domain

import (
	"math"
	"testing"
)

// --- TruncationError ---

func TestTruncationError(t *testing.T) {
	got := TruncationError(3.320117, 3.32)
	if math.Abs(got-0.000117) > 1e-12 {
		t.Errorf("TruncationError = %v, want 0.000117", got)
	}
}

func TestTruncationError_ExactApproximation(t *testing.T) {
	if got := TruncationError(2.5, 2.5); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

// --- SuccessiveDifference ---

func TestSuccessiveDifference_Reflexive(t *testing.T) {
	for _, a := range []float64{0, 1, -3.25, 3.320117, 1e-10} {
		if got := SuccessiveDifference(a, a); got != 0 {
			t.Errorf("SuccessiveDifference(%v, %v) = %v, want 0", a, a, got)
		}
	}
}

func TestSuccessiveDifference_Signed(t *testing.T) {
	if got := SuccessiveDifference(2.2, 1.0); got != 1.2000000000000002 && got != 1.2 {
		t.Errorf("unexpected difference %v", got)
	}
	if got := SuccessiveDifference(1.0, 2.0); got != -1.0 {
		t.Errorf("expected -1.0, got %v", got)
	}
}

// --- SignificantDigits ---

func TestSignificantDigits_ScarboroughRule(t *testing.T) {
	cases := []struct {
		err  float64
		want int
	}{
		{1e-10, 11}, // floor(2 - log10(2e-10)) = floor(11.699)
		{0.005, 4},  // floor(2 - log10(0.01)) = 4
		{0.5, 2},    // floor(2 - log10(1)) = 2
		{5, 1},      // floor(2 - log10(10)) = 1
		{1e-6, 7},
	}
	for _, c := range cases {
		got, err := SignificantDigits(c.err)
		if err != nil {
			t.Fatalf("SignificantDigits(%g) returned error: %v", c.err, err)
		}
		if got != c.want {
			t.Errorf("SignificantDigits(%g) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestSignificantDigits_Degenerate(t *testing.T) {
	for _, bad := range []float64{0, -1e-3, math.NaN(), math.Inf(1)} {
		_, err := SignificantDigits(bad)
		if err == nil {
			t.Fatalf("expected error for err=%v", bad)
		}
		if !IsKind(err, KindInvalidArgument) {
			t.Errorf("expected kind %s for err=%v, got %v", KindInvalidArgument, bad, err)
		}
	}
}
