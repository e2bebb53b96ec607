package ports

// Reference evaluates the target function at full library precision.
// True truncation errors are measured against it.
type Reference interface {
	Exp(x float64) float64
}
