package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"o3profile/pkg/contracts/domain"
)

// Series colors follow the matplotlib default cycle so the profile reads the
// same as the notebooks the field teams already use.
const (
	rawColor    = "#969CA1"
	binnedColor = "#1f77b4"
	smoothColor = "#d62728"
	bandColor   = "#ff7f0e"

	xAxisLabel = "Ozone (ppbv)"
	yAxisLabel = "Altitude (m MSL)"

	lineWidth     = 2
	lineWidthThin = 1
	rawSymbolSize = 4

	chartWidth  = "100%"
	chartHeight = "640px"
)

// BuildChart assembles the profile chart from pipeline output. Series without
// any defined values are left out entirely so the legend stays honest.
func BuildChart(data *domain.PlotData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "0"}),
		charts.WithXAxisOpts(opts.XAxis{Name: xAxisLabel, Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisLabel, Type: "value", Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside", XAxisIndex: []int{0}},
			opts.DataZoom{Type: "inside", YAxisIndex: []int{0}},
		),
	)

	line.AddSeries("Binned mean", meanSeries(data.Rows),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: binnedColor}),
		charts.WithLineStyleOpts(opts.LineStyle{Width: lineWidth}),
	)

	if smooth := smoothSeries(data.Rows); len(smooth) > 0 {
		line.AddSeries("Smoothed mean", smooth,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: smoothColor}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: lineWidth}),
		)
	}

	if data.Params.ShowBand && data.HasBand() {
		lower, upper := bandSeries(data.Rows)
		bandStyle := opts.LineStyle{Width: lineWidthThin, Type: "dashed", Opacity: opts.Float(0.8)}

		line.AddSeries("95% CI lower", lower,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: bandColor}),
			charts.WithLineStyleOpts(bandStyle),
		)
		line.AddSeries("95% CI upper", upper,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: bandColor}),
			charts.WithLineStyleOpts(bandStyle),
		)
	}

	if data.Params.ShowRaw && len(data.Points) > 0 {
		line.Overlap(rawScatter(data.Points))
	}

	return line
}

func meanSeries(rows []domain.ProfileRow) []opts.LineData {
	series := make([]opts.LineData, 0, len(rows))
	for _, row := range rows {
		series = append(series, opts.LineData{Value: []interface{}{row.Mean, row.AltBin}})
	}
	return series
}

func smoothSeries(rows []domain.ProfileRow) []opts.LineData {
	var series []opts.LineData
	for _, row := range rows {
		if row.MeanSmooth == nil {
			continue
		}
		series = append(series, opts.LineData{Value: []interface{}{*row.MeanSmooth, row.AltBin}})
	}
	return series
}

func bandSeries(rows []domain.ProfileRow) (lower, upper []opts.LineData) {
	for _, row := range rows {
		if row.CILower == nil || row.CIUpper == nil {
			continue
		}
		lower = append(lower, opts.LineData{Value: []interface{}{*row.CILower, row.AltBin}})
		upper = append(upper, opts.LineData{Value: []interface{}{*row.CIUpper, row.AltBin}})
	}
	return lower, upper
}

func rawScatter(points []domain.Point) *charts.Scatter {
	scatter := charts.NewScatter()

	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.ScatterData{
			Value:      []interface{}{p.Ozone, p.Altitude},
			SymbolSize: rawSymbolSize,
		})
	}

	scatter.AddSeries("Raw observations", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: rawColor, Opacity: opts.Float(0.5)}),
	)

	return scatter
}
