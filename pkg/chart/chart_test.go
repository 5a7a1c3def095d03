package chart_test

import (
	"encoding/json"
	"testing"

	"github.com/gnames/gnparks/pkg/chart"
	"github.com/gnames/gnparks/pkg/dataset"
	"github.com/gnames/gnparks/pkg/filter"
	"github.com/gnames/gnuuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []dataset.Record {
	return []dataset.Record{
		{ScientificName: "A", ParkName: "P1", Category: "Mammal",
			ConservationStatus: "Endangered", Observations: 10, CommonNames: "Gray Wolf"},
		{ScientificName: "B", ParkName: "P1", Category: "Bird",
			ConservationStatus: "Non-threatened", Observations: 5},
		{ScientificName: "A", ParkName: "P2", Category: "Mammal",
			ConservationStatus: "Endangered", Observations: 4, CommonNames: "Wolf"},
		{ScientificName: "C", ParkName: "P2", Category: "Bird",
			ConservationStatus: "Species of Concern", Observations: 8},
		{ScientificName: "D", ParkName: "P2", Category: "Fish",
			ConservationStatus: "Non-threatened", Observations: 2},
	}
}

func TestAggregate(t *testing.T) {
	agg := chart.Aggregate(records())

	require.Len(t, agg.Species, 4)
	assert.Equal(t, chart.SpeciesTotal{
		ScientificName: "A",
		Status:         "Endangered",
		CommonNames:    "Gray Wolf; Wolf",
		Observations:   14,
	}, agg.Species[0])

	assert.Equal(t, []chart.Total{
		{Name: "Endangered", Observations: 14},
		{Name: "Non-threatened", Observations: 7},
		{Name: "Species of Concern", Observations: 8},
	}, agg.Statuses)

	assert.Equal(t, []chart.Total{
		{Name: "Bird", Observations: 13},
		{Name: "Fish", Observations: 2},
		{Name: "Mammal", Observations: 14},
	}, agg.Categories)

	assert.Equal(t,
		[]string{"Endangered", "Non-threatened", "Species of Concern"},
		agg.StatusOrder(),
	)
}

func TestAggregateStatusTieBreak(t *testing.T) {
	rows := []dataset.Record{
		{ScientificName: "A", Category: "Mammal", ConservationStatus: "Threatened", Observations: 1},
		{ScientificName: "A", Category: "Mammal", ConservationStatus: "Endangered", Observations: 2},
	}
	agg := chart.Aggregate(rows)
	require.Len(t, agg.Species, 1)
	assert.Equal(t, "Threatened", agg.Species[0].Status)
	assert.Equal(t, 3, agg.Species[0].Observations)
	// statuses are still summed per record
	assert.Len(t, agg.Statuses, 2)
}

func TestAggregateTotalsConserved(t *testing.T) {
	agg := chart.Aggregate(records())

	sum := func(tt []chart.Total) int {
		var res int
		for _, v := range tt {
			res += v.Observations
		}
		return res
	}
	assert.Equal(t, 29, agg.Sum())
	assert.Equal(t, agg.Sum(), sum(agg.Statuses))
	assert.Equal(t, agg.Sum(), sum(agg.Categories))
}

func TestExampleStatuses(t *testing.T) {
	obs := []dataset.Observation{
		{ScientificName: "A", ParkName: "ParkX", Observations: 10},
		{ScientificName: "B", ParkName: "ParkX", Observations: 5},
	}
	spp := []dataset.Species{
		{ScientificName: "A", Category: "cat1", ConservationStatus: "Threatened"},
		{ScientificName: "B", Category: "cat1"},
	}
	tbl, _ := dataset.Merge(obs, spp)
	res := filter.Apply(tbl, filter.Selection{
		Parks:      []string{"ParkX"},
		Categories: []string{"cat1"},
	})
	require.Equal(t, filter.Rows, res.Kind)
	require.Len(t, res.Rows, 2)

	agg := chart.Aggregate(res.Rows)
	assert.Equal(t, []chart.Total{
		{Name: "Non-threatened", Observations: 5},
		{Name: "Threatened", Observations: 10},
	}, agg.Statuses)
}

func TestBuildPlaceholder(t *testing.T) {
	tests := []struct {
		msg  string
		kind filter.Kind
		text string
	}{
		{"no selection", filter.NoSelection, chart.MsgNoSelection},
		{"no match", filter.NoMatch, chart.MsgNoMatch},
	}

	for _, v := range tests {
		fig := chart.Build(filter.Result{Kind: v.kind})
		require.NotNil(t, fig, v.msg)
		assert.Empty(t, fig.Data, v.msg)
		require.Len(t, fig.Layout.Annotations, 1, v.msg)
		ann := fig.Layout.Annotations[0]
		assert.Equal(t, v.text, ann.Text, v.msg)
		assert.Equal(t, 0.5, ann.X, v.msg)
		assert.Equal(t, 0.5, ann.Y, v.msg)
		assert.False(t, ann.ShowArrow, v.msg)
		assert.Nil(t, fig.Layout.XAxis, v.msg)
	}
}

func TestBuildPlaceholderJSON(t *testing.T) {
	fig := chart.Placeholder(chart.MsgNoMatch)
	bs, err := json.Marshal(fig)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(bs, &m))
	// Plotly needs an array, not null
	assert.Equal(t, []any{}, m["data"])
	layout := m["layout"].(map[string]any)
	ann := layout["annotations"].([]any)[0].(map[string]any)
	assert.Equal(t, false, ann["showarrow"])
}

func TestBuildRows(t *testing.T) {
	fig := chart.Build(filter.Result{Kind: filter.Rows, Rows: records()})

	// 3 status bars, 1 pie, 3 category bars
	require.Len(t, fig.Data, 7)
	assert.Equal(t, chart.FigureTitle, fig.Layout.Title.Text)
	assert.Equal(t, 600, fig.Layout.Height)

	var titles []string
	for _, v := range fig.Layout.Annotations {
		titles = append(titles, v.Text)
	}
	assert.Equal(t,
		[]string{chart.TitleSpecies, chart.TitleStatus, chart.TitleCategory},
		titles,
	)

	endangered := fig.Data[0]
	assert.Equal(t, "bar", endangered.Type)
	assert.Equal(t, "Endangered", endangered.Name)
	assert.Equal(t, []string{"A"}, endangered.X)
	assert.Equal(t, []int{14}, endangered.Y)
	assert.Equal(t, []string{"Gray Wolf; Wolf"}, endangered.HoverText)
	assert.Equal(t, chart.Color(0), endangered.Marker.Color)

	nonThreatened := fig.Data[1]
	assert.Equal(t, []string{"B", "D"}, nonThreatened.X)
	assert.Equal(t, []int{5, 2}, nonThreatened.Y)
	assert.Nil(t, nonThreatened.HoverText)

	pie := fig.Data[3]
	assert.Equal(t, "pie", pie.Type)
	assert.Equal(t,
		[]string{"Endangered", "Non-threatened", "Species of Concern"},
		pie.Labels,
	)
	assert.Equal(t, []int{14, 7, 8}, pie.Values)
	// pie colors match colors of status bars
	assert.Equal(t,
		[]string{chart.Color(0), chart.Color(1), chart.Color(2)},
		pie.Marker.Colors,
	)

	cat := fig.Data[4]
	assert.Equal(t, "Bird", cat.Name)
	assert.Equal(t, "x2", cat.XAxis)
	assert.Equal(t, []int{13}, cat.Y)
}

func TestBuildSpeciesIDs(t *testing.T) {
	obs := []dataset.Observation{
		{ScientificName: "Canis lupus", ParkName: "Zion", Observations: 3},
		{ScientificName: "Ursus arctos", ParkName: "Zion", Observations: 2},
		{ScientificName: "Canis lupus", ParkName: "Bryce", Observations: 1},
	}
	spp := []dataset.Species{
		{ScientificName: "Canis lupus", Category: "Mammal", ConservationStatus: "Endangered"},
		{ScientificName: "Ursus arctos", Category: "Mammal", ConservationStatus: "Endangered"},
	}
	tbl, _ := dataset.Merge(obs, spp)
	res := filter.Apply(tbl, filter.Selection{
		Parks:      []string{"Zion", "Bryce"},
		Categories: []string{"Mammal"},
	})

	agg := chart.Aggregate(res.Rows)
	require.Len(t, agg.Species, 2)
	wolf := gnuuid.New("Canis lupus").String()
	bear := gnuuid.New("Ursus arctos").String()
	assert.Equal(t, wolf, agg.Species[0].ID)

	bs, err := json.Marshal(chart.Build(res))
	require.NoError(t, err)
	var fig struct {
		Data []struct {
			Type string   `json:"type"`
			X    []string `json:"x"`
			IDs  []string `json:"ids"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(bs, &fig))
	require.NotEmpty(t, fig.Data)
	bars := fig.Data[0]
	assert.Equal(t, []string{"Canis lupus", "Ursus arctos"}, bars.X)
	assert.Equal(t, []string{wolf, bear}, bars.IDs)
	// only species bars carry ids
	for _, v := range fig.Data[1:] {
		assert.Empty(t, v.IDs, v.Type)
	}
}

func TestColorWraps(t *testing.T) {
	assert.Equal(t, chart.Color(0), chart.Color(len(chart.Palette)))
}
