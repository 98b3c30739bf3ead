package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"o3profile/internal/config"
	"o3profile/internal/dataset"
	"o3profile/internal/infrastructure"
	"o3profile/internal/profile"
	"o3profile/pkg/contracts/domain"
)

// profiler runs the ozone profile pipeline once against a file and writes the
// binned rows, for scripting and spot checks without the web server.
func main() {
	input := flag.String("in", "", "input dataset (.csv or .xlsx); defaults to the configured dataset")
	bin := flag.Int("bin", 0, "altitude bin width in meters (default from config)")
	window := flag.Int("window", 0, "smoothing window in bins, odd (default from config)")
	format := flag.String("format", "json", "output format: json | csv")
	out := flag.String("out", "", "output file (defaults to stdout)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	params := cfg.DefaultParams()
	if *input != "" {
		params.Source = *input
	}
	if *bin != 0 {
		params.BinWidth = *bin
	}
	if *window != 0 {
		params.Window = *window
	}
	params.ShowRaw = false

	logger.Info("starting profile run",
		slog.String("source", params.Source),
		slog.Int("bin_width", params.BinWidth),
		slog.Int("window", params.Window),
		slog.String("format", *format))

	builder := profile.NewBuilder(dataset.NewCache(logger), logger)

	data, err := builder.Build(context.Background(), params)
	if err != nil {
		logger.Error("profile run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var dst io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Error("cannot create output file",
				slog.String("path", *out),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		dst = f
	}

	switch *format {
	case "json":
		err = writeJSON(dst, data)
	case "csv":
		err = writeCSV(dst, data.Rows)
	default:
		logger.Error("unknown output format", slog.String("format", *format))
		os.Exit(1)
	}
	if err != nil {
		logger.Error("failed to write output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("profile run complete",
		slog.Int("bins", len(data.Rows)),
		slog.Int("cleaned", data.Cleaned),
		slog.Int("dropped", data.Dropped))
}

func writeJSON(w io.Writer, data *domain.PlotData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func writeCSV(w io.Writer, rows []domain.ProfileRow) error {
	cw := csv.NewWriter(w)

	header := []string{"alt_bin", "count", "mean", "median", "std", "sem", "mean_smooth", "ci_lower", "ci_upper"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			formatFloat(row.AltBin),
			strconv.Itoa(row.Count),
			formatFloat(row.Mean),
			formatFloat(row.Median),
			formatOptional(row.StdDev),
			formatOptional(row.SEM),
			formatOptional(row.MeanSmooth),
			formatOptional(row.CILower),
			formatOptional(row.CIUpper),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
