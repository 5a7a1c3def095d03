// Package chart aggregates filtered records and builds a three-panel
// figure from them, or a placeholder figure for empty results.
package chart

import (
	"github.com/gnames/gnparks/pkg/filter"
)

const (
	// FigureTitle is the title of a figure with data.
	FigureTitle = "Species Observations across Selected Parks"
	// TitleSpecies is the title of the first panel.
	TitleSpecies = "Observations per Species"
	// TitleStatus is the title of the second panel.
	TitleStatus = "Conservation Status"
	// TitleCategory is the title of the third panel.
	TitleCategory = "Observations per Category"

	// MsgNoSelection is shown when parks or categories are not selected.
	MsgNoSelection = "Please select park(s) and category(ies)"
	// MsgNoMatch is shown when a selection matches nothing.
	MsgNoMatch = "No data available for selected filters"
)

const (
	background = "#111"
	foreground = "#FFF"
	height     = 600
)

// Palette is the sequence of colors given to statuses and categories.
var Palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Color returns the palette color for the i-th element.
func Color(i int) string {
	return Palette[i%len(Palette)]
}

// Domains of the three panels on the horizontal axis.
var (
	domainSpecies  = [2]float64{0, 0.2889}
	domainStatus   = [2]float64{0.3556, 0.6444}
	domainCategory = [2]float64{0.7111, 1}
)

// Build creates a figure for a filter result.
func Build(res filter.Result) *Figure {
	switch res.Kind {
	case filter.Rows:
		return FromAggregates(Aggregate(res.Rows))
	case filter.NoMatch:
		return Placeholder(MsgNoMatch)
	default:
		return Placeholder(MsgNoSelection)
	}
}

// Placeholder creates a figure without data and with a message in the
// middle.
func Placeholder(msg string) *Figure {
	return &Figure{
		Data: []Trace{},
		Layout: Layout{
			PaperBgColor: background,
			PlotBgColor:  background,
			Font:         Font{Color: foreground},
			Annotations: []Annotation{
				{
					Text:    msg,
					XRef:    "paper",
					YRef:    "paper",
					X:       0.5,
					Y:       0.5,
					XAnchor: "center",
					YAnchor: "middle",
					Font:    &Font{Size: 18},
				},
			},
		},
	}
}

// FromAggregates creates a three-panel figure: bars of observations per
// species colored by status, a pie of conservation statuses, and bars of
// observations per category.
func FromAggregates(agg Aggregates) *Figure {
	statuses := agg.StatusOrder()
	colors := make(map[string]string, len(statuses))
	for i, v := range statuses {
		colors[v] = Color(i)
	}

	data := make([]Trace, 0, len(statuses)+1+len(agg.Categories))
	data = append(data, speciesTraces(agg, statuses, colors)...)
	data = append(data, statusTrace(agg, colors))
	data = append(data, categoryTraces(agg)...)

	return &Figure{
		Data: data,
		Layout: Layout{
			Title:        &Title{Text: FigureTitle},
			Height:       height,
			PaperBgColor: background,
			PlotBgColor:  background,
			Font:         Font{Color: foreground},
			BarMode:      "relative",
			XAxis:        &Axis{Domain: domainSpecies, Anchor: "y"},
			YAxis:        &Axis{Domain: [2]float64{0, 1}, Anchor: "x"},
			XAxis2:       &Axis{Domain: domainCategory, Anchor: "y2"},
			YAxis2:       &Axis{Domain: [2]float64{0, 1}, Anchor: "x2"},
			Annotations: []Annotation{
				panelTitle(TitleSpecies, domainSpecies),
				panelTitle(TitleStatus, domainStatus),
				panelTitle(TitleCategory, domainCategory),
			},
		},
	}
}

func speciesTraces(
	agg Aggregates,
	statuses []string,
	colors map[string]string,
) []Trace {
	res := make([]Trace, 0, len(statuses))
	for _, st := range statuses {
		tr := Trace{
			Type:        "bar",
			Name:        st,
			LegendGroup: st,
			XAxis:       "x",
			YAxis:       "y",
			Marker:      &Marker{Color: colors[st]},
		}
		var hasCommon bool
		for _, sp := range agg.Species {
			if sp.Status != st {
				continue
			}
			tr.X = append(tr.X, sp.ScientificName)
			tr.Y = append(tr.Y, sp.Observations)
			tr.IDs = append(tr.IDs, sp.ID)
			tr.HoverText = append(tr.HoverText, sp.CommonNames)
			if sp.CommonNames != "" {
				hasCommon = true
			}
		}
		if !hasCommon {
			tr.HoverText = nil
		}
		res = append(res, tr)
	}
	return res
}

func statusTrace(agg Aggregates, colors map[string]string) Trace {
	tr := Trace{
		Type:   "pie",
		Name:   TitleStatus,
		Domain: &Domain{X: domainStatus, Y: [2]float64{0, 1}},
		Marker: &Marker{},
	}
	for _, v := range agg.Statuses {
		tr.Labels = append(tr.Labels, v.Name)
		tr.Values = append(tr.Values, v.Observations)
		tr.Marker.Colors = append(tr.Marker.Colors, colors[v.Name])
	}
	return tr
}

func categoryTraces(agg Aggregates) []Trace {
	res := make([]Trace, 0, len(agg.Categories))
	for i, v := range agg.Categories {
		res = append(res, Trace{
			Type:        "bar",
			Name:        v.Name,
			LegendGroup: v.Name,
			X:           []string{v.Name},
			Y:           []int{v.Observations},
			XAxis:       "x2",
			YAxis:       "y2",
			Marker:      &Marker{Color: Color(i)},
		})
	}
	return res
}

func panelTitle(text string, domain [2]float64) Annotation {
	return Annotation{
		Text:    text,
		XRef:    "paper",
		YRef:    "paper",
		X:       (domain[0] + domain[1]) / 2,
		Y:       1,
		XAnchor: "center",
		YAnchor: "bottom",
		Font:    &Font{Size: 16},
	}
}
