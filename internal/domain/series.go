package domain

import "time"

// Fixed parameters of the reference scenario: the report approximates
// exp(ExpBase) by Maclaurin partial sums.
const (
	// ExpBase is the fixed expansion value.
	ExpBase = 1.2

	// MaxTerms bounds every summation at term indices 0..MaxTerms-1,
	// guaranteeing termination regardless of the threshold.
	MaxTerms = 21

	// TermEpsilon stops a summation early once |term| falls below it.
	TermEpsilon = 1e-10

	// DefaultIterations is the default row count of the convergence table.
	// Row 16 is the first whose final term falls under TermEpsilon at
	// ExpBase, so successive partial sums never collide within this range.
	DefaultIterations = 16
)

// IterationRecord is one row of the convergence table.
type IterationRecord struct {
	Index         int
	Approximation float64
	TermsUsed     int

	// ApproxError is the successive difference against the previous row,
	// Digits the significant-digit estimate derived from its magnitude.
	// Both are meaningless on the first row, which has no predecessor;
	// HasEstimate marks rows where they are set.
	ApproxError float64
	TrueError   float64
	Digits      int
	HasEstimate bool
}

// ReportArtifact represents a persisted convergence report.
type ReportArtifact struct {
	Label     string
	Base      float64
	Reference float64

	StartedAt  time.Time
	FinishedAt time.Time

	Records []IterationRecord
}
