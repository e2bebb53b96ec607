package domain

import "fmt"

// Factorial returns n! as a float64 so that values past the int64 range
// degrade into large floats instead of wrapping. Negative input is rejected.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, &OpError{
			Op:   "domain.factorial",
			Kind: KindInvalidArgument,
			Err:  fmt.Errorf("n must be non-negative, got %d: %w", n, ErrInvalidArgument),
		}
	}

	if n == 0 || n == 1 {
		return 1, nil
	}

	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result, nil
}
