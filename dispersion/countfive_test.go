package dispersion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/godispersion/sample"
)

func TestCountFive(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []float64
		center string
		wantX  int
		wantY  int
	}{
		{
			name:   "all x deviations extreme",
			x:      []float64{-10, -9, 9, 10},
			y:      []float64{-1, 0, 1},
			center: "mean",
			wantX:  4,
			wantY:  0,
		},
		{
			name:   "all y deviations extreme",
			x:      []float64{4, 5, 6},
			y:      []float64{-30, -20, 20, 30},
			center: "mean",
			wantX:  0,
			wantY:  4,
		},
		{
			name:   "single outlier with median",
			x:      []float64{1, 2, 3, 4, 100},
			y:      []float64{10, 11, 12, 13, 14},
			center: "median",
			wantX:  1,
			wantY:  0,
		},
		{
			name:   "ties are not extreme",
			x:      []float64{-2, 0, 2},
			y:      []float64{-2, 0, 2},
			center: "mean",
			wantX:  0,
			wantY:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CountFive(tt.x, tt.y, tt.center)
			require.NoError(t, err)

			assert.Equal(t, tt.wantX, result.ExtremeX)
			assert.Equal(t, tt.wantY, result.ExtremeY)
			assert.Equal(t, sample.Center(tt.center), result.Center)
		})
	}
}

func TestCountFiveCenters(t *testing.T) {
	x := []float64{1, 2, 3, 10}
	y := []float64{5, 6, 7}

	mean, err := CountFive(x, y, "mean")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, mean.CenterX, 1e-12)
	assert.InDelta(t, 6.0, mean.CenterY, 1e-12)

	median, err := CountFive(x, y, "median")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, median.CenterX, 1e-12)
	assert.InDelta(t, 6.0, median.CenterY, 1e-12)

	// Deviations from the mean are 3 2 1 6, from the median 1.5 0.5 0.5 7.5.
	assert.Equal(t, 3, mean.ExtremeX)
	assert.Equal(t, 2, median.ExtremeX)
}

func TestCountFiveRejects(t *testing.T) {
	x := []float64{-10, -9, -8, 8, 9, 10}
	y := []float64{-1, 0, 1, 0.5, -0.5, 0}

	result, err := CountFive(x, y, "mean")
	require.NoError(t, err)

	assert.Equal(t, 6, result.ExtremeX)
	assert.True(t, result.Rejects())
	assert.True(t, result.Reject(6))
	assert.False(t, result.Reject(7))

	calm, err := CountFive(y, y, "mean")
	require.NoError(t, err)
	assert.False(t, calm.Rejects())
}

func TestCountFiveInvalidCenter(t *testing.T) {
	result, err := CountFive(wideSample, narrowSample, "mode")
	assert.ErrorIs(t, err, ErrInvalidCenter)
	assert.ErrorIs(t, err, sample.ErrInvalidCenter)
	assert.Nil(t, result)
}

func TestCountFiveErrors(t *testing.T) {
	_, err := CountFive(nil, narrowSample, "mean")
	assert.ErrorIs(t, err, ErrSampleTooSmall)

	_, err = CountFive(narrowSample, []float64{}, "median")
	assert.ErrorIs(t, err, ErrSampleTooSmall)

	// A single observation is enough for Count Five.
	result, err := CountFive([]float64{7}, narrowSample, "mean")
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExtremeX)
	assert.Equal(t, 4, result.ExtremeY)
}
