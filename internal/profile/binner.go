package profile

import (
	"math"
	"sort"

	"o3profile/pkg/contracts/domain"
)

// Bin is the per-altitude-bin aggregate before smoothing. StdDev is NaN for
// single-observation bins: the sample deviation of one value is undefined,
// not zero.
type Bin struct {
	AltBin float64
	Count  int
	Mean   float64
	Median float64
	StdDev float64
}

// Aggregate groups cleaned points by altitude bin and computes count, mean,
// median and sample standard deviation of ozone per bin. AltBin is
// round(altitude/binWidth)*binWidth with ties rounding away from zero, which
// for non-negative altitudes is half-up. Output is sorted ascending by AltBin.
func Aggregate(points []domain.Point, binWidth float64) []Bin {
	groups := make(map[float64][]float64)
	for _, p := range points {
		key := math.Round(p.Altitude/binWidth) * binWidth
		groups[key] = append(groups[key], p.Ozone)
	}

	bins := make([]Bin, 0, len(groups))
	for key, values := range groups {
		bins = append(bins, Bin{
			AltBin: key,
			Count:  len(values),
			Mean:   mean(values),
			Median: median(values),
			StdDev: sampleStdDev(values),
		})
	}

	sort.Slice(bins, func(i, j int) bool { return bins[i].AltBin < bins[j].AltBin })
	return bins
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// sampleStdDev returns the n-1 normalized standard deviation, NaN when n < 2.
func sampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return math.NaN()
	}
	m := mean(values)
	ss := 0.0
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}
