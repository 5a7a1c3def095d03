package dataset

import (
	"strconv"
	"strings"

	"github.com/gnames/gnuuid"
)

// Stats describes what happened to the rows during cleaning and merging.
type Stats struct {
	// ObservationRows is the number of rows read from observations.
	ObservationRows int `json:"observationRows"`
	// ObservationsIncomplete is the number of rows without a scientific
	// name or a park name.
	ObservationsIncomplete int `json:"observationsIncomplete"`
	// ObservationsDuplicate is the number of removed duplicates.
	ObservationsDuplicate int `json:"observationsDuplicate"`

	// SpeciesRows is the number of rows read from species.
	SpeciesRows int `json:"speciesRows"`
	// SpeciesIncomplete is the number of rows without a scientific name
	// or a category.
	SpeciesIncomplete int `json:"speciesIncomplete"`
	// SpeciesDuplicate is the number of removed duplicates.
	SpeciesDuplicate int `json:"speciesDuplicate"`
	// StatusFilled is the number of species that received NonThreatened
	// status.
	StatusFilled int `json:"statusFilled"`

	// Merged is the number of rows in the merged table.
	Merged int `json:"merged"`
}

// Merge cleans observations and species and joins them on the
// scientific name.
//
// Observations without scientific name or park name are dropped, species
// without scientific name or category are dropped. Exact duplicates are
// removed from each side keeping the first occurrence. Missing
// conservation status becomes NonThreatened. The join is an inner join:
// names present on one side only do not make it into the table. Records
// follow the order of observations, several species rows for the same name
// follow the order of species.
func Merge(obs []Observation, spp []Species) (*Table, Stats) {
	var stats Stats
	stats.ObservationRows = len(obs)
	stats.SpeciesRows = len(spp)

	cleanObs := make([]Observation, 0, len(obs))
	seen := make(map[string]struct{})
	for _, v := range obs {
		if v.ScientificName == "" || v.ParkName == "" {
			stats.ObservationsIncomplete++
			continue
		}
		key := v.key()
		if _, ok := seen[key]; ok {
			stats.ObservationsDuplicate++
			continue
		}
		seen[key] = struct{}{}
		cleanObs = append(cleanObs, v)
	}

	spIdx := make(map[string][]Species)
	seen = make(map[string]struct{})
	for _, v := range spp {
		if v.ScientificName == "" || v.Category == "" {
			stats.SpeciesIncomplete++
			continue
		}
		key := v.key()
		if _, ok := seen[key]; ok {
			stats.SpeciesDuplicate++
			continue
		}
		seen[key] = struct{}{}
		if v.ConservationStatus == "" {
			v.ConservationStatus = NonThreatened
			stats.StatusFilled++
		}
		spIdx[v.ScientificName] = append(spIdx[v.ScientificName], v)
	}

	ids := make(map[string]string)
	var records []Record
	for _, o := range cleanObs {
		matches, ok := spIdx[o.ScientificName]
		if !ok {
			continue
		}
		id, ok := ids[o.ScientificName]
		if !ok {
			id = gnuuid.New(o.ScientificName).String()
			ids[o.ScientificName] = id
		}
		for _, sp := range matches {
			records = append(records, Record{
				NameID:             id,
				ScientificName:     o.ScientificName,
				ParkName:           o.ParkName,
				Observations:       o.Observations,
				Category:           sp.Category,
				ConservationStatus: sp.ConservationStatus,
				CommonNames:        sp.CommonNames,
			})
		}
	}
	stats.Merged = len(records)

	return NewTable(records), stats
}

const sep = "\x1f"

func (o Observation) key() string {
	if o.Row != nil {
		return strings.Join(o.Row, sep)
	}
	return strings.Join(
		[]string{o.ScientificName, o.ParkName, strconv.Itoa(o.Observations)},
		sep,
	)
}

func (s Species) key() string {
	if s.Row != nil {
		return strings.Join(s.Row, sep)
	}
	return strings.Join(
		[]string{s.ScientificName, s.Category, s.ConservationStatus, s.CommonNames},
		sep,
	)
}
