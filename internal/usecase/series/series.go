// Package series implements truncated series summation as an explicit,
// bounded fold with the stopping rule as a testable predicate.
package series

import (
	"fmt"
	"math"

	"github.com/aalvaropc/serieslab/internal/domain"
	"github.com/aalvaropc/serieslab/internal/ports"
)

// Result is the outcome of one truncated summation.
type Result struct {
	Sum       float64
	TermsUsed int
}

// Sum accumulates src terms from index 0 up to limit-1, stopping early once
// a term's magnitude falls below epsilon (the term that triggers the stop is
// still included, matching classic convergence-table practice). The limit is
// clamped to domain.MaxTerms, so the loop terminates regardless of epsilon.
//
// A NaN or infinite term aborts the summation rather than silently
// propagating through downstream error analysis.
func Sum(src ports.TermSource, limit int, epsilon float64) (Result, error) {
	if limit < 1 {
		return Result{}, &domain.OpError{
			Op:   "series.sum",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("term limit must be at least 1, got %d: %w", limit, domain.ErrInvalidArgument),
		}
	}
	if limit > domain.MaxTerms {
		limit = domain.MaxTerms
	}

	var res Result
	for i := 0; i < limit; i++ {
		term, err := src.Term(i)
		if err != nil {
			return Result{}, err
		}
		if math.IsNaN(term) || math.IsInf(term, 0) {
			return Result{}, &domain.OpError{
				Op:   "series.sum",
				Kind: domain.KindDegenerateValue,
				Err:  fmt.Errorf("term %d is not finite (%v): %w", i, term, domain.ErrDegenerateValue),
			}
		}

		res.Sum += term
		res.TermsUsed++

		if math.Abs(term) < epsilon {
			break
		}
	}

	return res, nil
}
