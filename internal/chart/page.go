package chart

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"o3profile/internal/profile"
	"o3profile/pkg/contracts/domain"
)

const styleTagLen = len("</style>")

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Ozone Profile</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 0; background: #f7f8fa; color: #1c2126; }
header { background: #1c2126; color: #f7f8fa; padding: 14px 24px; }
header h1 { margin: 0; font-size: 18px; font-weight: 600; }
main { max-width: 1100px; margin: 0 auto; padding: 20px 24px; }
form.controls { display: flex; flex-wrap: wrap; gap: 16px; align-items: flex-end; background: #fff; border: 1px solid #e1e4e8; border-radius: 6px; padding: 14px 16px; margin-bottom: 18px; }
form.controls label { display: flex; flex-direction: column; font-size: 12px; gap: 4px; }
form.controls label.check { flex-direction: row; align-items: center; font-size: 13px; }
form.controls input[type=number], form.controls input[type=text] { padding: 5px 8px; border: 1px solid #c8ccd2; border-radius: 4px; width: 110px; }
form.controls button { padding: 7px 18px; border: none; border-radius: 4px; background: #1f77b4; color: #fff; cursor: pointer; }
.stats { display: flex; gap: 24px; font-size: 13px; color: #4b5560; margin-bottom: 12px; }
.stats strong { color: #1c2126; }
.echart-box { background: #fff; border: 1px solid #e1e4e8; border-radius: 6px; padding: 8px; }
</style>
</head>
<body>
<header><h1>Ozone Profile Dashboard</h1></header>
<main>
<form class="controls" method="get" action="/">
<label>Altitude bin (m)
<input type="number" name="bin" value="{{.Params.BinWidth}}" min="{{.MinBin}}" max="{{.MaxBin}}" step="{{.BinStep}}">
</label>
<label>Smoothing window (bins)
<input type="number" name="window" value="{{.Params.Window}}" min="{{.MinWindow}}" max="{{.MaxWindow}}" step="2">
</label>
<label class="check"><input type="checkbox" name="raw" value="true"{{if .Params.ShowRaw}} checked{{end}}> Raw points</label>
<input type="hidden" name="raw" value="false">
<label class="check"><input type="checkbox" name="band" value="true"{{if .Params.ShowBand}} checked{{end}}> Confidence band</label>
<input type="hidden" name="band" value="false">
<button type="submit">Update</button>
</form>
<div class="stats">
<span><strong>{{.Cleaned}}</strong> observations kept</span>
<span><strong>{{.Dropped}}</strong> dropped during cleaning</span>
<span><strong>{{.Bins}}</strong> altitude bins</span>
</div>
{{.Chart}}
</main>
</body>
</html>
`

type pageData struct {
	Params    domain.Params
	Cleaned   int
	Dropped   int
	Bins      int
	MinBin    int
	MaxBin    int
	BinStep   int
	MinWindow int
	MaxWindow int
	Chart     template.HTML
}

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// RenderPage writes the full dashboard page, with the current parameters
// reflected in the controls and the chart embedded inline.
func RenderPage(w io.Writer, data *domain.PlotData) error {
	var chartBuf bytes.Buffer
	if err := BuildChart(data).Render(&chartBuf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return pageTmpl.Execute(w, pageData{
		Params:    data.Params,
		Cleaned:   data.Cleaned,
		Dropped:   data.Dropped,
		Bins:      len(data.Rows),
		MinBin:    profile.MinBinWidth,
		MaxBin:    profile.MaxBinWidth,
		BinStep:   profile.BinWidthStep,
		MinWindow: profile.MinWindow,
		MaxWindow: profile.MaxWindow,
		Chart:     template.HTML(extractChartContent(chartBuf.String())),
	})
}

// extractChartContent pulls the chart div and its script out of the full HTML
// document go-echarts emits, so the chart can live inside our own page.
func extractChartContent(html string) string {
	trimmed := strings.TrimSpace(html)
	if !strings.HasPrefix(trimmed, "<!DOCTYPE") && !strings.HasPrefix(trimmed, "<html") {
		return html
	}

	start := strings.Index(html, `<div class="container">`)
	if start == -1 {
		return html
	}

	end := strings.Index(html, `</body>`)
	if end == -1 {
		return html
	}

	content := html[start:end]
	content = strings.ReplaceAll(content, `class="container"`, `class="echart-box"`)

	return removeStyleTags(content)
}

func removeStyleTags(content string) string {
	for {
		i := strings.Index(content, `<style>`)
		if i == -1 {
			break
		}

		j := strings.Index(content[i:], `</style>`)
		if j == -1 {
			break
		}

		content = content[:i] + content[i+j+styleTagLen:]
	}

	return content
}
