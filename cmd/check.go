/*
Copyright © 2026 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnparks/pkg/config"
	"github.com/gnames/gnparks/pkg/dataset"
	"github.com/gnames/gnparks/pkg/namecheck"
	"github.com/gnames/gnparks/pkg/parserpool"
	"github.com/spf13/cobra"
)

// maxProblems limits the number of problematic names in the text report.
const maxProblems = 20

// getCheckCmd returns the check command.
func getCheckCmd() *cobra.Command {
	var asJSON bool

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Load data, summarize it and check scientific names",
		Long: `Load and merge observations and species the same way serve does,
print a summary of the merged data and parse every distinct scientific
name with GNparser. Plant names are parsed according to the botanical
code, all others according to the zoological code.

Examples:
  gnparks check
  gnparks check -o observations.csv -s species_info.csv
  gnparks check --json > report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(dataFlags(cmd))
			err := runCheck(cmd.Context(), cfg, cmd.OutOrStdout(), asJSON)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addDataFlags(checkCmd)
	checkCmd.Flags().BoolVar(&asJSON, "json", false,
		"print the report as JSON")
	return checkCmd
}

// checkReport is the output of the check command.
type checkReport struct {
	Stats        dataset.Stats    `json:"stats"`
	Parks        int              `json:"parks"`
	Categories   int              `json:"categories"`
	Species      int              `json:"species"`
	Observations int              `json:"observations"`
	Names        namecheck.Report `json:"names"`
	Duration     string           `json:"duration"`
}

func runCheck(
	ctx context.Context,
	cfg *config.Config,
	w io.Writer,
	asJSON bool,
) error {
	start := time.Now()

	tbl, stats, err := loadTable(ctx, cfg)
	if err != nil {
		return err
	}

	names := namecheck.Names(tbl)
	pool := parserpool.New(cfg.JobsNumber)
	defer pool.Close()

	bar := newProgressBar(len(names), "Parsing names: ")
	nameRep, err := namecheck.Check(ctx, pool, names, cfg.JobsNumber,
		func() { bar.Increment() })
	bar.Finish()
	if err != nil {
		slog.Error("Cannot check names", "error", err)
		return err
	}

	rep := checkReport{
		Stats:      stats,
		Parks:      len(tbl.Parks()),
		Categories: len(tbl.Categories()),
		Species:    len(names),
		Names:      nameRep,
		Duration:   gnfmt.TimeString(time.Since(start).Seconds()),
	}
	for r := range tbl.All() {
		rep.Observations += r.Observations
	}
	slog.Info("Check finished",
		"merged", stats.Merged,
		"names", nameRep.Names,
		"unparsed", nameRep.Unparsed,
		"duration", rep.Duration,
	)

	if asJSON {
		bs, err := gnfmt.GNjson{Pretty: true}.Encode(rep)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(bs))
		return err
	}
	_, err = io.WriteString(w, rep.text())
	return err
}

// newProgressBar creates a progress bar that disappears when finished.
func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

func (r checkReport) text() string {
	c := func(i int) string { return humanize.Comma(int64(i)) }
	s := r.Stats

	var b strings.Builder
	fmt.Fprintln(&b, "Observations")
	fmt.Fprintf(&b, "  rows:              %s\n", c(s.ObservationRows))
	fmt.Fprintf(&b, "  incomplete:        %s\n", c(s.ObservationsIncomplete))
	fmt.Fprintf(&b, "  duplicates:        %s\n", c(s.ObservationsDuplicate))
	fmt.Fprintln(&b, "Species")
	fmt.Fprintf(&b, "  rows:              %s\n", c(s.SpeciesRows))
	fmt.Fprintf(&b, "  incomplete:        %s\n", c(s.SpeciesIncomplete))
	fmt.Fprintf(&b, "  duplicates:        %s\n", c(s.SpeciesDuplicate))
	fmt.Fprintf(&b, "  status filled:     %s\n", c(s.StatusFilled))
	fmt.Fprintln(&b, "Merged")
	fmt.Fprintf(&b, "  records:           %s\n", c(s.Merged))
	fmt.Fprintf(&b, "  parks:             %s\n", c(r.Parks))
	fmt.Fprintf(&b, "  categories:        %s\n", c(r.Categories))
	fmt.Fprintf(&b, "  species:           %s\n", c(r.Species))
	fmt.Fprintf(&b, "  observations:      %s\n", c(r.Observations))

	n := r.Names
	fmt.Fprintln(&b, "Scientific names")
	fmt.Fprintf(&b, "  parsed:            %s\n", c(n.Parsed))
	fmt.Fprintf(&b, "  unparsed:          %s\n", c(n.Unparsed))
	for _, q := range slices.Sorted(maps.Keys(n.Quality)) {
		fmt.Fprintf(&b, "  quality %d:         %s\n", q, c(n.Quality[q]))
	}
	for _, k := range slices.Sorted(maps.Keys(n.Cardinality)) {
		fmt.Fprintf(&b, "  cardinality %d:     %s\n", k, c(n.Cardinality[k]))
	}

	if len(n.Problems) > 0 {
		fmt.Fprintln(&b, "Problematic names")
		for i, v := range n.Problems {
			if i == maxProblems {
				fmt.Fprintf(&b, "  ... and %s more\n", c(len(n.Problems)-maxProblems))
				break
			}
			fmt.Fprintf(&b, "  %s (%s), quality %d", v.ScientificName,
				v.Category, v.ParseQuality)
			if len(v.Warnings) > 0 {
				fmt.Fprintf(&b, ": %s", strings.Join(v.Warnings, "; "))
			}
			fmt.Fprintln(&b)
		}
	}
	fmt.Fprintf(&b, "Elapsed time: %s\n", r.Duration)
	return b.String()
}
