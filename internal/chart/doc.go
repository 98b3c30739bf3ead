// Package chart renders an ozone profile as an interactive ECharts page.
//
// The chart itself is built with go-echarts; the surrounding page, with the
// parameter controls, is a html/template document that embeds the chart
// fragment. Reloading the page with different query parameters re-runs the
// pipeline server side.
package chart
