// Package selection resolves initial dashboard selections from configured
// defaults and the merged table.
package selection

import (
	"strings"

	"github.com/gnames/gnparks/pkg/dataset"
)

// Defaults are the parks and categories selected when a session starts.
type Defaults struct {
	Parks      []string `json:"parks"`
	Categories []string `json:"categories"`
}

// Resolve computes default selections.
//
// The park is used if it exists in the table, otherwise the first park of
// the table is selected. Categories is a comma-separated list, the
// categories that exist in the table are used in the given order. If none
// of them exist, all categories of the table are selected.
//
// An empty table gives empty defaults.
func Resolve(t *dataset.Table, park, categories string) Defaults {
	var res Defaults

	switch {
	case park != "" && t.HasPark(park):
		res.Parks = []string{park}
	case t.Len() > 0:
		res.Parks = []string{t.Parks()[0]}
	}

	seen := make(map[string]struct{})
	for _, v := range SplitList(categories) {
		if _, ok := seen[v]; ok || !t.HasCategory(v) {
			continue
		}
		seen[v] = struct{}{}
		res.Categories = append(res.Categories, v)
	}
	if len(res.Categories) == 0 {
		res.Categories = t.Categories()
	}

	return res
}

// SplitList splits a comma-separated list, trimming spaces and skipping
// empty elements.
func SplitList(s string) []string {
	var res []string
	for v := range strings.SplitSeq(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
