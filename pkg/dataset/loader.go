package dataset

import "context"

// Loader reads observations and species from their sources and merges
// them into a Table.
type Loader interface {
	// Load reads both sources, cleans and merges them. It fails if a
	// source cannot be read or lacks a required column.
	Load(ctx context.Context) (*Table, Stats, error)
}
