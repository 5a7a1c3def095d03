// Package iodataset reads observations and species from CSV files, SQLite
// or PostgreSQL tables and merges them into a dataset.Table. This is an
// impure I/O package that implements dataset.Loader.
package iodataset

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnparks/pkg/config"
	"github.com/gnames/gnparks/pkg/dataset"
	"golang.org/x/sync/errgroup"
)

// Default database tables of the two datasets.
const (
	ObservationsTable = "observations"
	SpeciesTable      = "species"
)

type loader struct {
	obs string
	spp string
}

// New creates a dataset.Loader for the sources of cfg.
func New(cfg config.DataConfig) dataset.Loader {
	return &loader{obs: cfg.Observations, spp: cfg.Species}
}

// Load reads both sources concurrently. The first failure cancels the
// other read.
func (l *loader) Load(ctx context.Context) (*dataset.Table, dataset.Stats, error) {
	var stats dataset.Stats
	start := time.Now()

	obsSrc, err := ParseSource(l.obs, ObservationsTable)
	if err != nil {
		return nil, stats, err
	}
	sppSrc, err := ParseSource(l.spp, SpeciesTable)
	if err != nil {
		return nil, stats, err
	}

	var obs []dataset.Observation
	var spp []dataset.Species

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := read(ctx, obsSrc)
		if err != nil {
			return err
		}
		obs, err = f.observations(obsSrc.String())
		return err
	})
	g.Go(func() error {
		f, err := read(ctx, sppSrc)
		if err != nil {
			return err
		}
		spp, err = f.species(sppSrc.String())
		return err
	})
	if err = g.Wait(); err != nil {
		slog.Error("Cannot load data", "error", err)
		return nil, stats, err
	}

	tbl, stats := dataset.Merge(obs, spp)
	slog.Info("Data loaded",
		"observations", obsSrc.String(),
		"species", sppSrc.String(),
		"observation_rows", stats.ObservationRows,
		"species_rows", stats.SpeciesRows,
		"merged_rows", stats.Merged,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return tbl, stats, nil
}

func read(ctx context.Context, src Source) (*frame, error) {
	switch src.Kind {
	case SQLite:
		return readSQLite(ctx, src)
	case Postgres:
		return readPostgres(ctx, src)
	default:
		return readCSV(src.Path)
	}
}
