package chart

// Figure is a chart description understood by Plotly.js.
// It is serialized to JSON and rendered by the browser.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one data series of a Figure.
type Trace struct {
	Type        string   `json:"type"`
	Name        string   `json:"name,omitempty"`
	LegendGroup string   `json:"legendgroup,omitempty"`
	// IDs keep bars matched to the same species across updates.
	IDs         []string `json:"ids,omitempty"`
	X           []string `json:"x,omitempty"`
	Y           []int    `json:"y,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Values      []int    `json:"values,omitempty"`
	HoverText   []string `json:"hovertext,omitempty"`
	XAxis       string   `json:"xaxis,omitempty"`
	YAxis       string   `json:"yaxis,omitempty"`
	Domain      *Domain  `json:"domain,omitempty"`
	Marker      *Marker  `json:"marker,omitempty"`
}

// Marker sets colors of a trace. Bars use Color, pies use Colors.
type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
	Line   Line     `json:"line"`
}

// Line is the outline of a marker.
type Line struct {
	Width int `json:"width"`
}

// Domain is a fraction of the plotting area occupied by a pie.
type Domain struct {
	X [2]float64 `json:"x"`
	Y [2]float64 `json:"y"`
}

// Layout describes everything in a Figure except data.
type Layout struct {
	Title        *Title       `json:"title,omitempty"`
	Height       int          `json:"height,omitempty"`
	PaperBgColor string       `json:"paper_bgcolor"`
	PlotBgColor  string       `json:"plot_bgcolor"`
	Font         Font         `json:"font"`
	BarMode      string       `json:"barmode,omitempty"`
	XAxis        *Axis        `json:"xaxis,omitempty"`
	YAxis        *Axis        `json:"yaxis,omitempty"`
	XAxis2       *Axis        `json:"xaxis2,omitempty"`
	YAxis2       *Axis        `json:"yaxis2,omitempty"`
	Annotations  []Annotation `json:"annotations,omitempty"`
}

// Title of a figure.
type Title struct {
	Text string `json:"text"`
}

// Font settings.
type Font struct {
	Color string `json:"color,omitempty"`
	Size  int    `json:"size,omitempty"`
}

// Axis settings of a cartesian subplot.
type Axis struct {
	Domain [2]float64 `json:"domain"`
	Anchor string     `json:"anchor,omitempty"`
}

// Annotation is a text placed on the figure, used for subplot titles and
// placeholder messages.
type Annotation struct {
	Text      string  `json:"text"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XAnchor   string  `json:"xanchor"`
	YAnchor   string  `json:"yanchor"`
	ShowArrow bool    `json:"showarrow"`
	Font      *Font   `json:"font,omitempty"`
}
