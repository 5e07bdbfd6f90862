package dispersion

import (
	"fmt"
	"math"
)

// F1TestResult represents the result of Shoemaker's kurtosis-corrected
// F-test.
type F1TestResult struct {
	FValue         float64 // Sx^2 / Sy^2
	PValue         float64
	RX             float64 // Adjusted sample size for x; numerator df is RX-1
	RY             float64 // Adjusted sample size for y; denominator df is RY-1
	KurtosisRatio  float64 // Pooled fourth moment over squared pooled variance
	FourthMoment   float64
	PooledVariance float64
	LargerVarXAlt  bool
}

// Reject reports whether the null hypothesis of equal variances is rejected
// at significance level alpha.
func (r *F1TestResult) Reject(alpha float64) bool {
	return r.PValue < alpha
}

// F1Test performs the F1 test from Shoemaker (2003), "Fixing the F Test for
// Equal Variances".
//
// The statistic is the same variance ratio as FTest, but the reference
// F-distribution uses degrees of freedom rx-1, ry-1 adjusted for the pooled
// kurtosis of the data:
//
//	r = 2n / (m4/s^4 - (n-3)/(n-1))
//
// where m4 is the pooled fourth central moment and s^2 the pooled variance,
// both divided by nx+ny. For normal data m4/s^4 is close to 3 and r-1 is
// close to n-1, so F1Test agrees with FTest.
//
// For very small samples or light-tailed data the adjusted degrees of freedom
// can be zero, negative or undefined. The method has no answer in that case
// and F1Test returns ErrInvalidDegreesOfFreedom instead of correcting it.
func F1Test(x, y []float64, largerVarXAlt bool) (*F1TestResult, error) {
	sx, sy, err := checkPair(x, y, 2)
	if err != nil {
		return nil, err
	}

	varX := sx.Variance()
	varY := sy.Variance()
	if varY == 0 {
		return nil, fmt.Errorf("%w: F ratio %g/0 is undefined", ErrZeroVariance, varX)
	}
	fValue := varX / varY

	nx := float64(sx.Len())
	ny := float64(sy.Len())

	fourthMoment := (sx.DeviationPowerSum(4) + sy.DeviationPowerSum(4)) / (nx + ny)
	pooledVar := ((nx-1)*varX + (ny-1)*varY) / (nx + ny)
	ratio := fourthMoment / (pooledVar * pooledVar)

	rx := 2 * nx / (ratio - (nx-3)/(nx-1))
	ry := 2 * ny / (ratio - (ny-3)/(ny-1))

	if !validDF(rx-1) || !validDF(ry-1) {
		return nil, fmt.Errorf("%w: rx-1=%g, ry-1=%g (kurtosis ratio %g)",
			ErrInvalidDegreesOfFreedom, rx-1, ry-1, ratio)
	}

	return &F1TestResult{
		FValue:         fValue,
		PValue:         fTail(fValue, rx-1, ry-1, largerVarXAlt),
		RX:             rx,
		RY:             ry,
		KurtosisRatio:  ratio,
		FourthMoment:   fourthMoment,
		PooledVariance: pooledVar,
		LargerVarXAlt:  largerVarXAlt,
	}, nil
}

func validDF(df float64) bool {
	return df > 0 && !math.IsInf(df, 0) && !math.IsNaN(df)
}
