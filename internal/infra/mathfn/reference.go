package mathfn

import (
	"math"

	"github.com/aalvaropc/serieslab/internal/ports"
)

// LibReference evaluates the reference exponential at standard
// double-precision accuracy via the math package.
type LibReference struct{}

var _ ports.Reference = LibReference{}

func (LibReference) Exp(x float64) float64 {
	return math.Exp(x)
}
