// Package godispersion provides two-sample tests for equal variances.
//
// GoDispersion is a small Go library for deciding whether two independent
// samples have the same dispersion. It implements the classical F-test, the
// kurtosis-corrected F1 test, and the nonparametric Count Five test.
//
// # Features
//
//   - F-test with one-sided alternatives
//   - F1 test with degrees of freedom adjusted for pooled kurtosis
//   - Count Five extreme-count test centered on the mean or the median
//   - A runner that applies all three tests to one pair of samples
//
// # Quick Start
//
// Run a single test:
//
//	res, err := dispersion.FTest(x, y, true) // H1: var(x) > var(y)
//	fmt.Println(res.FValue, res.PValue)
//
// Run every test with logging:
//
//	config := compare.DefaultConfig()
//	config.Logger = logger
//	report, err := compare.Run(sample.New(x), sample.New(y), config)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dispersion: F, F1 and Count Five tests
//   - compare: runs all tests on one pair of samples
//   - sample: Sample type and descriptive statistics
//
// # References
//
//   - Shoemaker, L. H. (2003). Fixing the F Test for Equal Variances. The American Statistician 57(2)
//   - McGrath, R. N., & Yeh, A. B. (2005). A Quick, Compact, Two-Sample Dispersion Test: Count Five. The American Statistician 59(1)
package godispersion
