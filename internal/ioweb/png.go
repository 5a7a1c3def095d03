package ioweb

import (
	"errors"
	"io"
	"strings"

	"github.com/gnames/gnparks/pkg/chart"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Panels that can be rendered as PNG.
const (
	PanelSpecies  = "species"
	PanelStatus   = "status"
	PanelCategory = "category"
)

const (
	pngWidth  = 1024
	pngHeight = 600
)

var (
	bgColor   = color("#111111")
	fontColor = color("#FFFFFF")
)

// panelRenderers write one panel of aggregates as a PNG image.
var panelRenderers = map[string]func(io.Writer, chart.Aggregates) error{
	PanelSpecies:  speciesPNG,
	PanelStatus:   statusPNG,
	PanelCategory: categoryPNG,
}

func speciesPNG(w io.Writer, agg chart.Aggregates) error {
	colors := make(map[string]drawing.Color)
	for i, v := range agg.StatusOrder() {
		colors[v] = color(chart.Color(i))
	}
	bars := make([]gochart.Value, 0, len(agg.Species))
	for _, v := range agg.Species {
		bars = append(bars, gochart.Value{
			Label: v.ScientificName,
			Value: float64(v.Observations),
			Style: gochart.Style{
				FillColor:   colors[v.Status],
				StrokeColor: colors[v.Status],
			},
		})
	}
	return barPNG(w, chart.TitleSpecies, bars)
}

func categoryPNG(w io.Writer, agg chart.Aggregates) error {
	bars := make([]gochart.Value, 0, len(agg.Categories))
	for i, v := range agg.Categories {
		bars = append(bars, gochart.Value{
			Label: v.Name,
			Value: float64(v.Observations),
			Style: gochart.Style{
				FillColor:   color(chart.Color(i)),
				StrokeColor: color(chart.Color(i)),
			},
		})
	}
	return barPNG(w, chart.TitleCategory, bars)
}

func barPNG(w io.Writer, title string, bars []gochart.Value) error {
	maxVal := 1.0
	for _, v := range bars {
		maxVal = max(maxVal, v.Value)
	}
	ch := gochart.BarChart{
		Title:      title,
		TitleStyle: gochart.Style{FontColor: fontColor},
		Width:      pngWidth,
		Height:     pngHeight,
		Background: gochart.Style{
			FillColor: bgColor,
			Padding:   gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: gochart.Style{FillColor: bgColor},
		XAxis:  gochart.Style{FontColor: fontColor, StrokeColor: fontColor},
		YAxis: gochart.YAxis{
			Style: gochart.Style{FontColor: fontColor, StrokeColor: fontColor},
			Range: &gochart.ContinuousRange{Min: 0, Max: maxVal * 1.05},
		},
		Bars: bars,
	}
	return ch.Render(gochart.PNG, w)
}

func statusPNG(w io.Writer, agg chart.Aggregates) error {
	idx := make(map[string]int)
	for i, v := range agg.StatusOrder() {
		idx[v] = i
	}
	var vals []gochart.Value
	for _, v := range agg.Statuses {
		if v.Observations == 0 {
			continue
		}
		c := color(chart.Color(idx[v.Name]))
		vals = append(vals, gochart.Value{
			Label: v.Name,
			Value: float64(v.Observations),
			Style: gochart.Style{
				FillColor:   c,
				StrokeColor: bgColor,
				FontColor:   fontColor,
			},
		})
	}
	if len(vals) == 0 {
		return errNoObservations
	}
	ch := gochart.PieChart{
		Title:      chart.TitleStatus,
		TitleStyle: gochart.Style{FontColor: fontColor},
		Width:      pngHeight,
		Height:     pngHeight,
		Background: gochart.Style{FillColor: bgColor},
		Canvas:     gochart.Style{FillColor: bgColor},
		Values:     vals,
	}
	return ch.Render(gochart.PNG, w)
}

var errNoObservations = errors.New("all observation counts are zero")

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
