package dispersion

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/godispersion/sample"
)

// CountFiveThreshold is the extreme count at which McGrath and Yeh's Count
// Five test rejects equal dispersion for equal sample sizes.
const CountFiveThreshold = 5

// CountFiveResult holds the extreme counts of the Count Five test.
type CountFiveResult struct {
	ExtremeX int // x deviations strictly above the largest y deviation
	ExtremeY int // y deviations strictly above the largest x deviation
	Center   sample.Center
	CenterX  float64
	CenterY  float64
}

// Reject reports whether either extreme count reaches threshold.
// Use CountFiveThreshold for equal sample sizes; unequal sizes call for a
// larger threshold on the bigger sample.
func (r *CountFiveResult) Reject(threshold int) bool {
	return r.ExtremeX >= threshold || r.ExtremeY >= threshold
}

// Rejects applies the standard Count Five decision rule.
func (r *CountFiveResult) Rejects() bool {
	return r.Reject(CountFiveThreshold)
}

// CountFive computes the extreme counts of the Count Five test from McGrath
// and Yeh (2005), "A Quick, Compact, Two-Sample Dispersion Test: Count Five".
//
// Each sample is centered on its own mean or median, as selected by center
// ("mean" or "median"). ExtremeX is the number of absolute x deviations
// strictly greater than every absolute y deviation; ExtremeY is the converse.
// An unknown center fails with ErrInvalidCenter.
func CountFive(x, y []float64, center string) (*CountFiveResult, error) {
	c, err := sample.ParseCenter(center)
	if err != nil {
		return nil, err
	}

	sx, sy, err := checkPair(x, y, 1)
	if err != nil {
		return nil, err
	}

	// Center cannot fail for a parsed value.
	centerX, _ := sx.Center(c)
	centerY, _ := sy.Center(c)

	devX := sx.AbsDeviations(centerX)
	devY := sy.AbsDeviations(centerY)

	maxX := floats.Max(devX)
	maxY := floats.Max(devY)

	return &CountFiveResult{
		ExtremeX: floats.Count(func(d float64) bool { return d > maxY }, devX),
		ExtremeY: floats.Count(func(d float64) bool { return d > maxX }, devY),
		Center:   c,
		CenterX:  centerX,
		CenterY:  centerY,
	}, nil
}
