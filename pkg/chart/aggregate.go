package chart

import (
	"slices"
	"strings"

	"github.com/gnames/gnparks/pkg/dataset"
)

// Total is a sum of observations for a group.
type Total struct {
	Name         string `json:"name"`
	Observations int    `json:"observations"`
}

// SpeciesTotal is a sum of observations for a species.
type SpeciesTotal struct {
	// ID is the stable UUID of the scientific name.
	ID             string `json:"id"`
	ScientificName string `json:"scientificName"`
	// Status is the conservation status of the first record of the
	// species.
	Status       string `json:"status"`
	CommonNames  string `json:"commonNames,omitempty"`
	Observations int    `json:"observations"`
}

// Aggregates are the three groupings shown on a dashboard.
type Aggregates struct {
	// Species in the order of their first appearance.
	Species []SpeciesTotal `json:"species"`
	// Statuses sorted by name.
	Statuses []Total `json:"statuses"`
	// Categories sorted by name.
	Categories []Total `json:"categories"`
}

// Aggregate sums observations by species, by conservation status and by
// category.
func Aggregate(rows []dataset.Record) Aggregates {
	var res Aggregates
	spIdx := make(map[string]int)
	statuses := make(map[string]int)
	cats := make(map[string]int)

	for _, r := range rows {
		i, ok := spIdx[r.ScientificName]
		if !ok {
			i = len(res.Species)
			spIdx[r.ScientificName] = i
			res.Species = append(res.Species, SpeciesTotal{
				ID:             r.NameID,
				ScientificName: r.ScientificName,
				Status:         r.ConservationStatus,
			})
		}
		sp := &res.Species[i]
		sp.Observations += r.Observations
		sp.CommonNames = addCommonNames(sp.CommonNames, r.CommonNames)

		statuses[r.ConservationStatus] += r.Observations
		cats[r.Category] += r.Observations
	}

	res.Statuses = totals(statuses)
	res.Categories = totals(cats)
	return res
}

// StatusOrder returns statuses in the order they first appear among
// species. This order assigns colors to statuses.
func (a Aggregates) StatusOrder() []string {
	var res []string
	seen := make(map[string]struct{})
	for _, v := range a.Species {
		if _, ok := seen[v.Status]; ok {
			continue
		}
		seen[v.Status] = struct{}{}
		res = append(res, v.Status)
	}
	return res
}

// Sum returns the total number of observations.
func (a Aggregates) Sum() int {
	var res int
	for _, v := range a.Species {
		res += v.Observations
	}
	return res
}

func totals(m map[string]int) []Total {
	res := make([]Total, 0, len(m))
	for k, v := range m {
		res = append(res, Total{Name: k, Observations: v})
	}
	slices.SortFunc(res, func(a, b Total) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res
}

func addCommonNames(acc, names string) string {
	if names == "" || acc == names {
		return acc
	}
	if acc == "" {
		return names
	}
	for v := range strings.SplitSeq(acc, "; ") {
		if v == names {
			return acc
		}
	}
	return acc + "; " + names
}
