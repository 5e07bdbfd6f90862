// Package sample provides the Sample type and the descriptive statistics the
// dispersion tests are built on.
package sample

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is an ordered set of observations drawn from one population.
// Methods never modify Values.
type Sample struct {
	Values []float64
	Name   string
}

// New creates a new sample from values.
func New(values []float64) *Sample {
	return &Sample{Values: values}
}

// NewNamed creates a sample with a display name used in logs and reports.
func NewNamed(name string, values []float64) *Sample {
	return &Sample{Values: values, Name: name}
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the sample.
func (s *Sample) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the unbiased variance (denominator n-1).
func (s *Sample) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the unbiased standard deviation of the sample.
func (s *Sample) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the sample.
func (s *Sample) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value in the sample.
func (s *Sample) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// Median returns the median value of the sample. For an even number of
// observations it is the average of the two middle order statistics.
func (s *Sample) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// DeviationPowerSum returns the sum of (x - mean)^k over the sample.
// k=2 gives the unnormalized variance, k=4 the unnormalized fourth moment.
func (s *Sample) DeviationPowerSum(k float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Moment(k, s.Values, nil) * float64(len(s.Values))
}

// Center returns the centering value of the sample for the given method.
func (s *Sample) Center(c Center) (float64, error) {
	switch c {
	case CenterMean:
		return s.Mean(), nil
	case CenterMedian:
		return s.Median(), nil
	default:
		return 0, invalidCenter(string(c))
	}
}

// AbsDeviations returns |x - about| for every observation, in order.
func (s *Sample) AbsDeviations(about float64) []float64 {
	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		result[i] = math.Abs(v - about)
	}
	return result
}

// IsFinite reports whether every observation is a finite number.
func (s *Sample) IsFinite() bool {
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Copy creates a deep copy of the sample.
func (s *Sample) Copy() *Sample {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Sample{
		Values: values,
		Name:   s.Name,
	}
}
