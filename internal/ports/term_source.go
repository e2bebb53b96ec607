package ports

// TermSource produces the i-th term of a series expansion.
//
// Implementations must be pure: the same index always yields the same value.
// This is the seam for swapping the target function (exponential, sine, ...)
// without touching the summation algorithm.
type TermSource interface {
	Term(i int) (float64, error)
}
