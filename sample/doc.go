// Package sample provides the Sample type used by the dispersion tests.
//
// A Sample wraps a slice of observations and exposes the descriptive
// statistics the tests need. None of its methods modify the underlying
// slice.
//
// # Creating a Sample
//
//	x := sample.New([]float64{10.1, 9.8, 10.4, 9.6, 10.0})
//	y := sample.NewNamed("batch-b", []float64{8.0, 12.5, 9.1, 11.8, 7.4})
//
// # Basic Statistics
//
//	mean := x.Mean()
//	variance := x.Variance() // unbiased, denominator n-1
//	median := x.Median()
//	m4 := x.DeviationPowerSum(4)
//
// # Centering
//
// Deviations for the Count Five test are measured from the mean or the
// median of each sample:
//
//	c, err := sample.ParseCenter("median")
//	if err != nil {
//	    // err wraps sample.ErrInvalidCenter
//	}
//	mu, _ := x.Center(c)
//	devs := x.AbsDeviations(mu)
package sample
