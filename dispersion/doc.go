// Package dispersion provides two-sample tests for equal variances.
//
// All tests are pure functions of two independent samples. None of them
// retain or modify their inputs, so they are safe to call concurrently.
//
// # F-test
//
// The classical F-test compares the ratio of unbiased sample variances with
// an F-distribution. It assumes normal data:
//
//	// H0: var(x) = var(y), H1: var(x) > var(y)
//	res, err := dispersion.FTest(x, y, true)
//	fmt.Printf("F=%.4f, p=%.4f\n", res.FValue, res.PValue)
//
// Pass false for the alternative var(x) < var(y).
//
// # F1 Test
//
// Shoemaker's F1 test keeps the F statistic but adjusts the degrees of
// freedom for the pooled kurtosis of the data, which makes it far less
// sensitive to non-normality:
//
//	res, err := dispersion.F1Test(x, y, true)
//	if errors.Is(err, dispersion.ErrInvalidDegreesOfFreedom) {
//	    // samples too small or too light-tailed for the correction
//	}
//
// # Count Five
//
// The Count Five test is nonparametric. It counts how many absolute
// deviations in one sample exceed the largest absolute deviation in the
// other:
//
//	res, err := dispersion.CountFive(x, y, "median")
//	if res.Rejects() {
//	    // five or more extreme observations: dispersions differ
//	}
//
// # Errors
//
// Degenerate input is reported rather than propagated as NaN or a panic:
// ErrSampleTooSmall, ErrNonFinite, ErrZeroVariance,
// ErrInvalidDegreesOfFreedom and ErrInvalidCenter can all be matched with
// errors.Is.
package dispersion
