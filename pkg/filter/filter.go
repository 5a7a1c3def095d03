// Package filter selects records of the merged table that belong to
// selected parks and categories.
package filter

import (
	"github.com/gnames/gnparks/pkg/dataset"
)

// Kind tells if a Result has rows, or why it is empty.
type Kind int

const (
	// Rows means at least one record matched the selection.
	Rows Kind = iota
	// NoSelection means that parks or categories were not selected.
	NoSelection
	// NoMatch means that nothing matched the selection.
	NoMatch
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Rows:
		return "rows"
	case NoSelection:
		return "no-selection"
	case NoMatch:
		return "no-match"
	default:
		return "unknown"
	}
}

// Selection contains parks and categories chosen by a user.
type Selection struct {
	Parks      []string `json:"parks"`
	Categories []string `json:"categories"`
}

// Result of applying a Selection to a table.
type Result struct {
	Kind Kind
	// Rows are matching records in table order, empty unless Kind is Rows.
	Rows []dataset.Record
}

// Empty returns true if the Result has no rows.
func (r Result) Empty() bool {
	return r.Kind != Rows
}

// Apply returns records that belong to one of the selected parks AND to one
// of the selected categories. It never fails: empty selections and
// selections without matches produce empty results of a corresponding
// Kind.
func Apply(t *dataset.Table, sel Selection) Result {
	if len(sel.Parks) == 0 || len(sel.Categories) == 0 {
		return Result{Kind: NoSelection}
	}

	parks := toSet(sel.Parks)
	cats := toSet(sel.Categories)

	var rows []dataset.Record
	for r := range t.All() {
		if _, ok := parks[r.ParkName]; !ok {
			continue
		}
		if _, ok := cats[r.Category]; !ok {
			continue
		}
		rows = append(rows, r)
	}

	if len(rows) == 0 {
		return Result{Kind: NoMatch}
	}
	return Result{Kind: Rows, Rows: rows}
}

func toSet(ss []string) map[string]struct{} {
	res := make(map[string]struct{}, len(ss))
	for _, v := range ss {
		res[v] = struct{}{}
	}
	return res
}
