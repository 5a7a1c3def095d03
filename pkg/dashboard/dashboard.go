// Package dashboard ties the merged table, default selections, filtering
// and chart building into the update function of a dashboard session.
package dashboard

import (
	"slices"

	"github.com/gnames/gnparks/pkg/chart"
	"github.com/gnames/gnparks/pkg/config"
	"github.com/gnames/gnparks/pkg/dataset"
	"github.com/gnames/gnparks/pkg/filter"
	"github.com/gnames/gnparks/pkg/selection"
)

// Options are the values offered by dashboard controls.
type Options struct {
	// Parks are distinct park names, sorted.
	Parks []string `json:"parks"`
	// Categories are distinct categories, sorted.
	Categories []string `json:"categories"`
	// Defaults are preselected parks and categories.
	Defaults selection.Defaults `json:"defaults"`
}

// View is the outcome of one update.
type View struct {
	Kind       filter.Kind
	Aggregates chart.Aggregates
	Figure     *chart.Figure
}

// Dashboard is shared by all sessions. It only reads the table and is safe
// for concurrent use.
type Dashboard struct {
	tbl  *dataset.Table
	opts Options
}

// New creates a Dashboard for a merged table, resolving defaults from cfg.
func New(tbl *dataset.Table, cfg config.DashboardConfig) *Dashboard {
	parks := tbl.Parks()
	slices.Sort(parks)
	cats := tbl.Categories()
	slices.Sort(cats)

	return &Dashboard{
		tbl: tbl,
		opts: Options{
			Parks:      parks,
			Categories: cats,
			Defaults: selection.Resolve(
				tbl, cfg.DefaultPark, cfg.DefaultCategories,
			),
		},
	}
}

// Table returns the merged table.
func (d *Dashboard) Table() *dataset.Table {
	return d.tbl
}

// Options returns control values and defaults.
func (d *Dashboard) Options() Options {
	return Options{
		Parks:      slices.Clone(d.opts.Parks),
		Categories: slices.Clone(d.opts.Categories),
		Defaults: selection.Defaults{
			Parks:      slices.Clone(d.opts.Defaults.Parks),
			Categories: slices.Clone(d.opts.Defaults.Categories),
		},
	}
}

// Defaults returns the selection a new session starts with.
func (d *Dashboard) Defaults() filter.Selection {
	return filter.Selection{
		Parks:      slices.Clone(d.opts.Defaults.Parks),
		Categories: slices.Clone(d.opts.Defaults.Categories),
	}
}

// Update builds the figure for a selection.
func (d *Dashboard) Update(sel filter.Selection) *chart.Figure {
	return d.View(sel).Figure
}

// View filters the table and builds aggregates and the figure for a
// selection. Aggregates are empty unless Kind is filter.Rows.
func (d *Dashboard) View(sel filter.Selection) View {
	res := filter.Apply(d.tbl, sel)
	if res.Empty() {
		return View{Kind: res.Kind, Figure: chart.Build(res)}
	}
	agg := chart.Aggregate(res.Rows)
	return View{
		Kind:       res.Kind,
		Aggregates: agg,
		Figure:     chart.FromAggregates(agg),
	}
}
