package dispersion

import (
	"errors"
	"fmt"

	"github.com/sartorproj/godispersion/sample"
)

var (
	// ErrSampleTooSmall is returned when a sample has too few observations
	// for the requested test.
	ErrSampleTooSmall = errors.New("sample too small")

	// ErrZeroVariance is returned when the denominator sample has zero
	// variance and the F ratio is undefined.
	ErrZeroVariance = errors.New("zero variance in denominator sample")

	// ErrNonFinite is returned when a sample contains NaN or an infinity.
	ErrNonFinite = errors.New("sample contains non-finite values")

	// ErrInvalidDegreesOfFreedom is returned when the kurtosis-adjusted
	// degrees of freedom of the F1 test are not finite positive numbers.
	// This happens for tiny samples or extreme kurtosis and is a limitation
	// of the method itself.
	ErrInvalidDegreesOfFreedom = errors.New("invalid degrees of freedom")

	// ErrInvalidCenter is returned by CountFive for an unknown center.
	ErrInvalidCenter = sample.ErrInvalidCenter
)

// checkPair wraps x and y and verifies each holds at least minLen finite
// observations.
func checkPair(x, y []float64, minLen int) (*sample.Sample, *sample.Sample, error) {
	sx, sy := sample.New(x), sample.New(y)
	if err := checkSample("x", sx, minLen); err != nil {
		return nil, nil, err
	}
	if err := checkSample("y", sy, minLen); err != nil {
		return nil, nil, err
	}
	return sx, sy, nil
}

func checkSample(label string, s *sample.Sample, minLen int) error {
	if s.Len() < minLen {
		return fmt.Errorf("%w: sample %s has %d values, need at least %d",
			ErrSampleTooSmall, label, s.Len(), minLen)
	}
	if !s.IsFinite() {
		return fmt.Errorf("%w: sample %s", ErrNonFinite, label)
	}
	return nil
}
