package profile

import "math"

const (
	// minSEMCount is the smallest bin population for which the standard error
	// of the mean is considered meaningful.
	minSEMCount = 5

	// minWindowValues is the least number of defined values a (possibly
	// clipped) rolling window must hold to produce a smoothed value.
	minWindowValues = 3

	// ciZ is the z-score of the ~95% confidence interval.
	ciZ = 1.96
)

// StandardErrors computes sem = stddev/sqrt(count) per bin. The result is NaN
// wherever the bin holds fewer than minSEMCount observations or its standard
// deviation is itself undefined.
func StandardErrors(bins []Bin) []float64 {
	sem := make([]float64, len(bins))
	for i, b := range bins {
		if b.Count < minSEMCount || math.IsNaN(b.StdDev) {
			sem[i] = math.NaN()
			continue
		}
		sem[i] = b.StdDev / math.Sqrt(float64(b.Count))
	}
	return sem
}

// RollingMean computes a centered moving average over window consecutive
// positions. Windows shrink at the sequence edges instead of dropping those
// positions; a position yields NaN when its clipped window holds fewer than
// minWindowValues defined values.
func RollingMean(values []float64, window int) []float64 {
	n := len(values)
	out := make([]float64, n)

	for i := 0; i < n; i++ {
		lo := i - (window-1)/2
		hi := i + window/2
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}

		sum, count := 0.0, 0
		for j := lo; j <= hi; j++ {
			if math.IsNaN(values[j]) {
				continue
			}
			sum += values[j]
			count++
		}

		if count < minWindowValues {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(count)
	}

	return out
}

// ConfidenceBand computes smooth ± ciZ*sem per position. Either bound is NaN
// wherever the smoothed mean or the sem is undefined; callers treat a fully
// NaN band as absent rather than as an error.
func ConfidenceBand(smooth, sem []float64) (lower, upper []float64) {
	lower = make([]float64, len(smooth))
	upper = make([]float64, len(smooth))
	for i := range smooth {
		if math.IsNaN(smooth[i]) || math.IsNaN(sem[i]) {
			lower[i] = math.NaN()
			upper[i] = math.NaN()
			continue
		}
		lower[i] = smooth[i] - ciZ*sem[i]
		upper[i] = smooth[i] + ciZ*sem[i]
	}
	return lower, upper
}
