// Package dataset holds observation and species records and merges them
// into an immutable table. This is a pure package, reading of the sources
// happens in internal/iodataset.
package dataset

import (
	"iter"
	"slices"
)

// NonThreatened is the conservation status given to species
// that have no status in the species source.
const NonThreatened = "Non-threatened"

// Column names of the sources.
const (
	ColScientificName     = "scientific_name"
	ColParkName           = "park_name"
	ColObservations       = "observations"
	ColCategory           = "category"
	ColConservationStatus = "conservation_status"
	ColCommonNames        = "common_names"
)

// Observation is a row of the observations source.
type Observation struct {
	ScientificName string
	ParkName       string
	Observations   int

	// Row contains all cells of the source row, missing values are empty
	// strings. Rows with the same cells are duplicates. If Row is nil,
	// the typed fields are compared instead.
	Row []string
}

// Species is a row of the species source.
type Species struct {
	ScientificName     string
	Category           string
	ConservationStatus string

	// CommonNames is optional, it is empty if the source has no
	// common_names column.
	CommonNames string

	// Row has the same meaning as Observation.Row.
	Row []string
}

// Record is a row of the merged table.
type Record struct {
	// NameID is a UUID v5 generated from the scientific name.
	NameID             string `json:"nameId"`
	ScientificName     string `json:"scientificName"`
	ParkName           string `json:"parkName"`
	Observations       int    `json:"observations"`
	Category           string `json:"category"`
	ConservationStatus string `json:"conservationStatus"`
	CommonNames        string `json:"commonNames,omitempty"`
}

// Table is the read-only result of merging observations and species.
// It has no mutating methods and is safe for concurrent use.
type Table struct {
	records    []Record
	parks      []string
	categories []string
	parkSet    map[string]struct{}
	catSet     map[string]struct{}
}

// NewTable creates a Table from records, keeping their order.
func NewTable(records []Record) *Table {
	res := Table{
		records: slices.Clone(records),
		parkSet: make(map[string]struct{}),
		catSet:  make(map[string]struct{}),
	}
	for _, v := range res.records {
		if _, ok := res.parkSet[v.ParkName]; !ok {
			res.parkSet[v.ParkName] = struct{}{}
			res.parks = append(res.parks, v.ParkName)
		}
		if _, ok := res.catSet[v.Category]; !ok {
			res.catSet[v.Category] = struct{}{}
			res.categories = append(res.categories, v.Category)
		}
	}
	return &res
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// All iterates over records in table order.
func (t *Table) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, v := range t.records {
			if !yield(v) {
				return
			}
		}
	}
}

// Records returns a copy of all records.
func (t *Table) Records() []Record {
	return slices.Clone(t.records)
}

// Parks returns distinct park names in the order of their first
// appearance.
func (t *Table) Parks() []string {
	return slices.Clone(t.parks)
}

// Categories returns distinct categories in the order of their first
// appearance.
func (t *Table) Categories() []string {
	return slices.Clone(t.categories)
}

// HasPark checks if a park is present in the table.
func (t *Table) HasPark(park string) bool {
	_, ok := t.parkSet[park]
	return ok
}

// HasCategory checks if a category is present in the table.
func (t *Table) HasCategory(category string) bool {
	_, ok := t.catSet[category]
	return ok
}
