// Package mathfn adapts the standard math library to the domain ports:
// Maclaurin term generation and the reference exponential.
package mathfn

import (
	"math"

	"github.com/aalvaropc/serieslab/internal/domain"
	"github.com/aalvaropc/serieslab/internal/ports"
)

// ExpSource produces Maclaurin terms base^i / i! for exp(base) expanded at 0.
type ExpSource struct {
	Base float64
}

var _ ports.TermSource = ExpSource{}

func NewExpSource(base float64) ExpSource {
	return ExpSource{Base: base}
}

func (s ExpSource) Term(i int) (float64, error) {
	fact, err := domain.Factorial(i)
	if err != nil {
		return 0, err
	}
	return math.Pow(s.Base, float64(i)) / fact, nil
}
