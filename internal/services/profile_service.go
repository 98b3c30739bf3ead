package services

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"o3profile/internal/infrastructure"
	"o3profile/internal/profile"
	"o3profile/pkg/contracts/domain"
)

// ProfileService fronts the profile builder for the transport layer: it owns
// request logging and pipeline metrics, and keeps handlers free of both.
type ProfileService struct {
	builder *profile.Builder
	logger  *slog.Logger
	tel     *infrastructure.Telemetry
}

// NewProfileService creates the profile service. tel may be nil in tests and
// in the batch CLI.
func NewProfileService(builder *profile.Builder, logger *slog.Logger, tel *infrastructure.Telemetry) *ProfileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileService{
		builder: builder,
		logger:  logger.With(slog.String("component", "profile_service")),
		tel:     tel,
	}
}

// BuildProfile runs one full pipeline pass for params.
func (s *ProfileService) BuildProfile(ctx context.Context, params domain.Params) (*domain.PlotData, error) {
	start := time.Now()

	data, err := s.builder.Build(ctx, params)

	elapsed := time.Since(start)
	if s.tel != nil {
		attrs := metric.WithAttributes(attribute.Int("bin_width", params.BinWidth))
		s.tel.BuildCount.Add(ctx, 1, attrs)
		s.tel.BuildDuration.Record(ctx, elapsed.Seconds(), attrs)
		if err != nil {
			s.tel.BuildFailures.Add(ctx, 1, attrs)
		}
	}

	if err != nil {
		s.logger.WarnContext(ctx, "profile build failed",
			slog.String("source", params.Source),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed))
		return nil, err
	}

	s.logger.InfoContext(ctx, "profile build completed",
		slog.String("source", params.Source),
		slog.Int("bins", len(data.Rows)),
		slog.Duration("elapsed", elapsed))

	return data, nil
}
