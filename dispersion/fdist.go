package dispersion

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// fTail returns the one-sided p-value of f under an F-distribution with d1
// and d2 degrees of freedom. When upper is set the alternative is a larger
// numerator variance and the right tail 1 - P(F < f) is returned, otherwise
// the left tail P(F < f).
//
// d1 and d2 must be positive; distuv panics otherwise.
func fTail(f, d1, d2 float64, upper bool) float64 {
	cdf := distuv.F{D1: d1, D2: d2}.CDF(f)
	if upper {
		return 1 - cdf
	}
	return cdf
}
