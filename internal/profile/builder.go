package profile

import (
	"context"
	"log/slog"
	"math"

	"o3profile/internal/dataset"
	"o3profile/pkg/contracts/domain"
)

// Builder runs the full profile pipeline: load -> schema -> clean -> bin ->
// smooth. It holds no mutable state of its own beyond the dataset cache, so a
// single Builder serves concurrent requests; each Build call is a complete,
// independent recompute.
type Builder struct {
	cache  *dataset.Cache
	logger *slog.Logger
}

// NewBuilder creates a profile builder backed by the given dataset cache.
func NewBuilder(cache *dataset.Cache, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		cache:  cache,
		logger: logger.With(slog.String("component", "profile_builder")),
	}
}

// Build validates params and computes the plot data for them. Any returned
// error is terminal for this run: *ParamsError, *dataset.LoadError,
// *dataset.SchemaError, or *dataset.EmptyDatasetError.
func (b *Builder) Build(ctx context.Context, params domain.Params) (*domain.PlotData, error) {
	if err := ValidateParams(params); err != nil {
		return nil, err
	}

	table, err := b.cache.Load(params.Source)
	if err != nil {
		return nil, err
	}

	if err := dataset.ValidateSchema(table); err != nil {
		return nil, err
	}

	points, stats, err := dataset.Clean(table)
	if err != nil {
		return nil, err
	}

	b.logger.InfoContext(ctx, "dataset cleaned",
		slog.String("source", params.Source),
		slog.Int("raw_rows", stats.Raw),
		slog.Int("kept_rows", stats.Kept),
		slog.Int("bad_altitude", stats.BadAltitude),
		slog.Int("bad_ozone", stats.BadOzone),
		slog.Int("non_positive_ozone", stats.NonPositiveO3))

	bins := Aggregate(points, float64(params.BinWidth))
	sem := StandardErrors(bins)

	means := make([]float64, len(bins))
	for i, bin := range bins {
		means[i] = bin.Mean
	}
	smooth := RollingMean(means, params.Window)
	lower, upper := ConfidenceBand(smooth, sem)

	rows := make([]domain.ProfileRow, len(bins))
	for i, bin := range bins {
		rows[i] = domain.ProfileRow{
			AltBin:     bin.AltBin,
			Count:      bin.Count,
			Mean:       bin.Mean,
			Median:     bin.Median,
			StdDev:     optional(bin.StdDev),
			SEM:        optional(sem[i]),
			MeanSmooth: optional(smooth[i]),
			CILower:    optional(lower[i]),
			CIUpper:    optional(upper[i]),
		}
	}

	data := &domain.PlotData{
		Params:  params,
		Rows:    rows,
		Cleaned: stats.Kept,
		Dropped: stats.Raw - stats.Kept,
	}
	if params.ShowRaw {
		data.Points = points
	}

	b.logger.InfoContext(ctx, "profile built",
		slog.String("source", params.Source),
		slog.Int("bin_width", params.BinWidth),
		slog.Int("window", params.Window),
		slog.Int("bins", len(rows)),
		slog.Bool("band", data.HasBand()))

	return data, nil
}

// optional maps NaN, the internal marker for an undefined statistic, to nil.
func optional(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
