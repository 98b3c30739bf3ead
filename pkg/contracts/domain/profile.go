package domain

// Point is a single cleaned observation from the source dataset.
// Invariant: Altitude is finite and Ozone is strictly positive.
type Point struct {
	Altitude float64 `json:"altitude"`
	Ozone    float64 `json:"ozone"`
}

// ProfileRow is the aggregate for one altitude bin, ordered ascending by AltBin.
// Optional statistics are nil where the underlying value is undefined: StdDev for
// single-observation bins, SEM for bins with fewer than five observations,
// MeanSmooth where the clipped rolling window held fewer than three values, and
// the CI bounds wherever either of their inputs is nil.
type ProfileRow struct {
	AltBin     float64  `json:"alt_bin"`
	Count      int      `json:"count"`
	Mean       float64  `json:"mean"`
	Median     float64  `json:"median"`
	StdDev     *float64 `json:"stddev,omitempty"`
	SEM        *float64 `json:"sem,omitempty"`
	MeanSmooth *float64 `json:"mean_smooth,omitempty"`
	CILower    *float64 `json:"ci_lower,omitempty"`
	CIUpper    *float64 `json:"ci_upper,omitempty"`
}

// Params is the full parameter surface of a profile build. Every request is
// revalidated independently; there is no retained parameter state.
type Params struct {
	Source   string `json:"source" validate:"required"`
	BinWidth int    `json:"bin_width" validate:"min=10,max=500"`
	Window   int    `json:"window" validate:"min=3,max=51"`
	ShowRaw  bool   `json:"show_raw"`
	ShowBand bool   `json:"show_band"`
}

// PlotData is the complete result of one pipeline run. Points is omitted when
// the raw scatter is disabled; Rows always carries the full profile.
type PlotData struct {
	Params  Params       `json:"params"`
	Points  []Point      `json:"points,omitempty"`
	Rows    []ProfileRow `json:"rows"`
	Cleaned int          `json:"cleaned_count"`
	Dropped int          `json:"dropped_count"`
}

// HasBand reports whether at least one row carries a complete confidence
// interval. An absent band is a data-quality outcome, not an error.
func (p *PlotData) HasBand() bool {
	for i := range p.Rows {
		if p.Rows[i].CILower != nil && p.Rows[i].CIUpper != nil {
			return true
		}
	}
	return false
}
