package sample

import (
	"errors"
	"fmt"
)

// ErrInvalidCenter is returned when a centering method is neither "mean"
// nor "median".
var ErrInvalidCenter = errors.New("invalid center")

// Center selects the location estimate deviations are measured from.
type Center string

const (
	CenterMean   Center = "mean"
	CenterMedian Center = "median"
)

// ParseCenter converts a user-supplied string into a Center.
func ParseCenter(s string) (Center, error) {
	switch c := Center(s); c {
	case CenterMean, CenterMedian:
		return c, nil
	default:
		return "", invalidCenter(s)
	}
}

func (c Center) String() string {
	return string(c)
}

func invalidCenter(s string) error {
	return fmt.Errorf("%w %q: must be %q or %q", ErrInvalidCenter, s, CenterMean, CenterMedian)
}
