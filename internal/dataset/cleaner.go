package dataset

import (
	"math"
	"strconv"

	"o3profile/pkg/contracts/domain"
)

// CleanStats summarizes what cleaning did to the raw table. Row drops here are
// a normal data-quality step, not an error, unless they empty the dataset.
type CleanStats struct {
	Raw           int
	Kept          int
	BadAltitude   int
	BadOzone      int
	NonPositiveO3 int
}

// Clean coerces the altitude and ozone columns to numbers and drops every row
// with a missing value in either. Ozone readings at or below zero are not
// physical and count as missing. Returns *EmptyDatasetError when nothing
// survives. ValidateSchema must have passed before this is called.
func Clean(t *Table) ([]domain.Point, CleanStats, error) {
	altIdx := t.ColumnIndex(AltitudeColumn)
	o3Idx := t.ColumnIndex(OzoneColumn)

	stats := CleanStats{Raw: t.Rows()}
	points := make([]domain.Point, 0, t.Rows())

	for _, row := range t.Cells {
		alt := coerce(row[altIdx])
		o3 := coerce(row[o3Idx])

		if !math.IsNaN(o3) && o3 <= 0 {
			stats.NonPositiveO3++
			o3 = math.NaN()
		}

		if math.IsNaN(alt) {
			stats.BadAltitude++
		}
		if math.IsNaN(o3) {
			stats.BadOzone++
		}
		if math.IsNaN(alt) || math.IsNaN(o3) {
			continue
		}

		points = append(points, domain.Point{Altitude: alt, Ozone: o3})
	}

	stats.Kept = len(points)
	if stats.Kept == 0 {
		return nil, stats, &EmptyDatasetError{Total: stats.Raw}
	}
	return points, stats, nil
}

// coerce parses a cell as float64, mapping anything unparsable (including the
// blank cells left by sentinel removal) and non-finite values to NaN.
func coerce(cell string) float64 {
	if cell == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
