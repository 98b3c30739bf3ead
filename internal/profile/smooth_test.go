package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardErrors(t *testing.T) {
	bins := []Bin{
		{Count: 9, StdDev: 3},
		{Count: 4, StdDev: 3},
		{Count: 1, StdDev: math.NaN()},
		{Count: 25, StdDev: 10},
	}

	sem := StandardErrors(bins)

	require.Len(t, sem, 4)
	assert.InDelta(t, 1.0, sem[0], 1e-12)
	assert.True(t, math.IsNaN(sem[1]), "fewer than five observations")
	assert.True(t, math.IsNaN(sem[2]))
	assert.InDelta(t, 2.0, sem[3], 1e-12)
}

func TestRollingMean_CentersAndClips(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	out := RollingMean(values, 3)

	require.Len(t, out, 5)
	// Edge windows shrink to two positions and fall under the three-value
	// minimum, so the ends are undefined.
	assert.True(t, math.IsNaN(out[0]))
	assert.InDelta(t, 2.0, out[1], 1e-12)
	assert.InDelta(t, 3.0, out[2], 1e-12)
	assert.InDelta(t, 4.0, out[3], 1e-12)
	assert.True(t, math.IsNaN(out[4]))
}

func TestRollingMean_WindowWiderThanSeries(t *testing.T) {
	values := []float64{1, 2, 3}

	out := RollingMean(values, 11)

	for i := range out {
		assert.InDelta(t, 2.0, out[i], 1e-12)
	}
}

func TestRollingMean_SkipsUndefinedValues(t *testing.T) {
	values := []float64{1, math.NaN(), 3, 4, 5}

	out := RollingMean(values, 5)

	// Position 2 sees {1, 3, 4, 5}.
	assert.InDelta(t, 3.25, out[2], 1e-12)
	// Position 0 sees {1, 3} only.
	assert.True(t, math.IsNaN(out[0]))
}

func TestRollingMean_AllUndefined(t *testing.T) {
	values := []float64{math.NaN(), math.NaN(), math.NaN()}

	out := RollingMean(values, 3)

	for i := range out {
		assert.True(t, math.IsNaN(out[i]))
	}
}

func TestConfidenceBand(t *testing.T) {
	smooth := []float64{10, 20, math.NaN()}
	sem := []float64{1, math.NaN(), 2}

	lower, upper := ConfidenceBand(smooth, sem)

	assert.InDelta(t, 10-1.96, lower[0], 1e-12)
	assert.InDelta(t, 10+1.96, upper[0], 1e-12)
	assert.True(t, math.IsNaN(lower[1]), "undefined sem leaves no band")
	assert.True(t, math.IsNaN(upper[1]))
	assert.True(t, math.IsNaN(lower[2]), "undefined smooth leaves no band")
	assert.True(t, math.IsNaN(upper[2]))
}

func TestConfidenceBand_Ordering(t *testing.T) {
	smooth := []float64{42}
	sem := []float64{3.5}

	lower, upper := ConfidenceBand(smooth, sem)

	assert.Less(t, lower[0], smooth[0])
	assert.Greater(t, upper[0], smooth[0])
}
