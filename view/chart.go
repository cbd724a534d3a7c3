package view

import (
	"strconv"
	"strings"

	"stockdash/model"
	"stockdash/util"
)

const (
	ChartWidth   = 600
	ChartHeight  = 360
	chartPadding = 40
)

// ChartPanel is a closing price series projected onto an SVG viewport.
// An empty panel has no points and no labels.
type ChartPanel struct {
	Symbol    string `json:"symbol"`
	Title     string `json:"title"`
	Empty     bool   `json:"empty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Points    string `json:"points"`
	MinLabel  string `json:"minLabel,omitempty"`
	MaxLabel  string `json:"maxLabel,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	XAxis     string `json:"xAxis"`
	YAxis     string `json:"yAxis"`
}

func BuildChartPanel(series model.ChartSeries) ChartPanel {
	panel := ChartPanel{
		Symbol: series.Symbol,
		Empty:  series.Empty(),
		Width:  ChartWidth,
		Height: ChartHeight,
		XAxis:  "Date",
		YAxis:  "Price (USD)",
	}
	if panel.Empty {
		return panel
	}

	panel.Title = series.Symbol + " Stock Price (Last 1 Month)"

	lo, hi := series.Points[0].Close, series.Points[0].Close
	for _, p := range series.Points[1:] {
		lo = min(lo, p.Close)
		hi = max(hi, p.Close)
	}

	plotW := float64(ChartWidth - 2*chartPadding)
	plotH := float64(ChartHeight - 2*chartPadding)
	n := len(series.Points)

	coords := make([]string, 0, n)
	for i, p := range series.Points {
		x := float64(chartPadding) + plotW/2
		if n > 1 {
			x = float64(chartPadding) + plotW*float64(i)/float64(n-1)
		}
		y := float64(chartPadding) + plotH/2
		if hi > lo {
			y = float64(chartPadding) + plotH*(hi-p.Close)/(hi-lo)
		}
		coords = append(coords, formatCoord(x)+","+formatCoord(y))
	}

	panel.Points = strings.Join(coords, " ")
	panel.MinLabel = FormatCurrency(lo)
	panel.MaxLabel = FormatCurrency(hi)
	panel.StartDate = util.FormatDateLabel(series.Points[0].Date)
	panel.EndDate = util.FormatDateLabel(series.Points[n-1].Date)
	return panel
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
