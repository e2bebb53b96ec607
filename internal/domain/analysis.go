package domain

import (
	"fmt"
	"math"
)

// TruncationError is the true error of an approximation: the reference
// function value minus the partial sum.
func TruncationError(reference, approx float64) float64 {
	return reference - approx
}

// SuccessiveDifference is the a-posteriori error estimate: the change
// between two consecutive approximations.
func SuccessiveDifference(current, previous float64) float64 {
	return current - previous
}

// SignificantDigits estimates the count of correct significant decimal digits
// from an absolute error magnitude via Scarborough's rule,
// floor(2 - log10(2*err)), truncated to an integer.
//
// err must be positive and finite; zero would make the logarithm undefined,
// so the degenerate case is rejected instead of propagating -Inf.
func SignificantDigits(err float64) (int, error) {
	if !(err > 0) || math.IsInf(err, 0) {
		return 0, &OpError{
			Op:   "domain.significant_digits",
			Kind: KindInvalidArgument,
			Err:  fmt.Errorf("error magnitude must be positive and finite, got %g: %w", err, ErrInvalidArgument),
		}
	}

	return int(math.Floor(2 - math.Log10(2*err))), nil
}
