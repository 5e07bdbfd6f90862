package dispersion

import (
	"fmt"
)

// FTestResult represents the result of a classical two-sample F-test.
type FTestResult struct {
	FValue        float64 // Sx^2 / Sy^2
	PValue        float64
	DFNum         float64 // nx - 1
	DFDen         float64 // ny - 1
	LargerVarXAlt bool    // Alternative hypothesis: var(x) > var(y)
}

// Reject reports whether the null hypothesis of equal variances is rejected
// at significance level alpha.
func (r *FTestResult) Reject(alpha float64) bool {
	return r.PValue < alpha
}

// FTest performs the F-test for equal variances of two independent samples.
//
// The statistic is the ratio of the unbiased sample variances Sx^2 / Sy^2,
// referred to an F-distribution with (nx-1, ny-1) degrees of freedom. If
// largerVarXAlt is true the alternative is var(x) > var(y) and the p-value is
// the right tail, otherwise the alternative is var(x) < var(y) and the
// p-value is the left tail.
//
// The test assumes both samples are normal; see F1Test for a version robust
// to kurtosis. Each sample needs at least two values and y must have non-zero
// variance.
func FTest(x, y []float64, largerVarXAlt bool) (*FTestResult, error) {
	sx, sy, err := checkPair(x, y, 2)
	if err != nil {
		return nil, err
	}

	varY := sy.Variance()
	if varY == 0 {
		return nil, fmt.Errorf("%w: F ratio %g/0 is undefined", ErrZeroVariance, sx.Variance())
	}
	fValue := sx.Variance() / varY

	dfNum := float64(sx.Len() - 1)
	dfDen := float64(sy.Len() - 1)

	return &FTestResult{
		FValue:        fValue,
		PValue:        fTail(fValue, dfNum, dfDen, largerVarXAlt),
		DFNum:         dfNum,
		DFDen:         dfDen,
		LargerVarXAlt: largerVarXAlt,
	}, nil
}
