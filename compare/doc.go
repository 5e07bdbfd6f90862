// Package compare runs every dispersion test on one pair of samples.
//
// Run executes the F-test, Shoemaker's F1 test and the Count Five test and
// gathers their results in a Report. Each test is independent, so a failure
// in one (for example invalid F1 degrees of freedom on a tiny sample) does
// not discard the others.
//
// # Basic Usage
//
//	x := sample.NewNamed("before", before)
//	y := sample.NewNamed("after", after)
//
//	report, err := compare.Run(x, y, compare.DefaultConfig())
//	if report == nil {
//	    log.Fatal(err)
//	}
//	if err != nil {
//	    // some tests failed; multierr.Errors(err) lists them
//	}
//	fmt.Println(report.Rejects())
//
// # Configuration Options
//
//	config := &compare.Config{
//	    LargerVarXAlt: true,      // H1: var(x) > var(y)
//	    Center:        "mean",    // Count Five centering
//	    SkipF1:        false,     // run the F1 test
//	    Alpha:         0.01,      // significance level
//	    Logger:        zapLogger, // debug output per test
//	}
package compare
