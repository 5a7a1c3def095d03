// Package namecheck parses scientific names of the merged table and
// summarizes how well-formed they are.
package namecheck

import (
	"context"
	"fmt"
	"slices"

	"github.com/gnames/gnparks/pkg/dataset"
	"github.com/gnames/gnparks/pkg/parserpool"
	"golang.org/x/sync/errgroup"
)

// Name is a distinct scientific name with the category of its first
// record.
type Name struct {
	ID             string
	ScientificName string
	Category       string
}

// Problem is a name that could not be parsed or was parsed with warnings.
type Problem struct {
	ID             string   `json:"id"`
	ScientificName string   `json:"scientificName"`
	Category       string   `json:"category"`
	ParseQuality   int      `json:"parseQuality"`
	Canonical      string   `json:"canonical,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

// Report summarizes parsing results.
type Report struct {
	Names    int `json:"names"`
	Parsed   int `json:"parsed"`
	Unparsed int `json:"unparsed"`

	// Quality counts names by parse quality: 0 unparsed, 1 clean,
	// 2-4 increasingly problematic.
	Quality map[int]int `json:"quality"`

	// Cardinality counts parsed names by the number of elements:
	// 1 uninomial, 2 binomial, 3 trinomial and so on.
	Cardinality map[int]int `json:"cardinality"`

	// Problems are names with parse quality other than 1, in table order.
	Problems []Problem `json:"problems,omitempty"`
}

// Names returns distinct scientific names of a table in the order of their
// first appearance.
func Names(t *dataset.Table) []Name {
	var res []Name
	seen := make(map[string]struct{})
	for r := range t.All() {
		if _, ok := seen[r.ScientificName]; ok {
			continue
		}
		seen[r.ScientificName] = struct{}{}
		res = append(res, Name{
			ID:             r.NameID,
			ScientificName: r.ScientificName,
			Category:       r.Category,
		})
	}
	return res
}

type result struct {
	idx         int
	quality     int
	cardinality int
	problem     *Problem
}

// Check parses names with jobsNum workers. The parser code of a name is
// derived from its category. The optional progress function is called
// once for each parsed name from a single goroutine.
func Check(
	ctx context.Context,
	pool parserpool.Pool,
	names []Name,
	jobsNum int,
	progress func(),
) (Report, error) {
	if jobsNum < 1 {
		jobsNum = 1
	}
	res := Report{
		Names:       len(names),
		Quality:     make(map[int]int),
		Cardinality: make(map[int]int),
	}

	chIn := make(chan int)
	chOut := make(chan result)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for i := range names {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- i:
			}
		}
		return nil
	})

	wg, wctx := errgroup.WithContext(ctx)
	for range jobsNum {
		wg.Go(func() error {
			return worker(wctx, pool, names, chIn, chOut)
		})
	}
	g.Go(func() error {
		defer close(chOut)
		return wg.Wait()
	})

	var problems []result
	g.Go(func() error {
		for r := range chOut {
			res.Quality[r.quality]++
			if r.quality == 0 {
				res.Unparsed++
			} else {
				res.Parsed++
				res.Cardinality[r.cardinality]++
			}
			if r.problem != nil {
				problems = append(problems, r)
			}
			if progress != nil {
				progress()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	slices.SortFunc(problems, func(a, b result) int {
		return a.idx - b.idx
	})
	for _, v := range problems {
		res.Problems = append(res.Problems, *v.problem)
	}
	return res, nil
}

func worker(
	ctx context.Context,
	pool parserpool.Pool,
	names []Name,
	chIn <-chan int,
	chOut chan<- result,
) error {
	for i := range chIn {
		n := names[i]
		p, err := pool.Parse(n.ScientificName, parserpool.CodeFor(n.Category))
		if err != nil {
			return err
		}

		r := result{
			idx:         i,
			quality:     p.ParseQuality,
			cardinality: p.Cardinality,
		}
		if p.ParseQuality != 1 {
			prob := Problem{
				ID:             n.ID,
				ScientificName: n.ScientificName,
				Category:       n.Category,
				ParseQuality:   p.ParseQuality,
			}
			if p.Canonical != nil {
				prob.Canonical = p.Canonical.Simple
			}
			for _, w := range p.QualityWarnings {
				prob.Warnings = append(prob.Warnings, fmt.Sprint(w.Warning))
			}
			r.problem = &prob
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case chOut <- r:
		}
	}
	return nil
}
