package usecase

import (
	"context"
	"math"
	"time"

	"github.com/aalvaropc/serieslab/internal/domain"
	"github.com/aalvaropc/serieslab/internal/ports"
	ucseries "github.com/aalvaropc/serieslab/internal/usecase/series"
)

// BuildReport produces the convergence table: one row per iteration, each row
// summing one more term than the last. The expansion value stays fixed; only
// the term count varies across rows.
type BuildReport struct {
	terms ports.TermSource
	ref   ports.Reference
	store ports.ArtifactStore // optional; nil disables saving
}

func NewBuildReport(terms ports.TermSource, ref ports.Reference, store ports.ArtifactStore) *BuildReport {
	return &BuildReport{
		terms: terms,
		ref:   ref,
		store: store,
	}
}

// Params controls a single report run.
type Params struct {
	Label      string
	Base       float64
	Iterations int     // rows; defaulted and clamped to domain.MaxTerms
	Epsilon    float64 // term threshold; defaulted to domain.TermEpsilon
}

// Execute builds the report row by row. On a row failure it returns the
// artifact filled up to the last valid row together with the error, so the
// caller can surface partial progress. A partial artifact is never saved.
func (uc *BuildReport) Execute(ctx context.Context, p Params) (domain.ReportArtifact, string, error) {
	iterations := p.Iterations
	if iterations < 1 {
		iterations = domain.DefaultIterations
	}
	if iterations > domain.MaxTerms {
		iterations = domain.MaxTerms
	}

	epsilon := p.Epsilon
	if epsilon <= 0 {
		epsilon = domain.TermEpsilon
	}

	report := domain.ReportArtifact{
		Label:     p.Label,
		Base:      p.Base,
		Reference: uc.ref.Exp(p.Base),
		StartedAt: time.Now(),
		Records:   make([]domain.IterationRecord, 0, iterations),
	}

	var previous float64
	for n := 1; n <= iterations; n++ {
		if err := ctx.Err(); err != nil {
			return report, "", &domain.OpError{
				Op:   "usecase.build_report",
				Kind: domain.KindExecution,
				Err:  err,
			}
		}

		res, err := ucseries.Sum(uc.terms, n, epsilon)
		if err != nil {
			return report, "", err
		}

		rec := domain.IterationRecord{
			Index:         n,
			Approximation: res.Sum,
			TermsUsed:     res.TermsUsed,
			TrueError:     domain.TruncationError(report.Reference, res.Sum),
		}

		if n > 1 {
			diff := domain.SuccessiveDifference(res.Sum, previous)
			digits, derr := domain.SignificantDigits(math.Abs(diff))
			if derr != nil {
				return report, "", derr
			}
			rec.ApproxError = diff
			rec.Digits = digits
			rec.HasEstimate = true
		}

		report.Records = append(report.Records, rec)
		previous = res.Sum
	}
	report.FinishedAt = time.Now()

	if uc.store == nil {
		return report, "", nil
	}

	id, err := uc.store.SaveReport(report)
	if err != nil {
		return report, "", err
	}
	return report, id, nil
}
