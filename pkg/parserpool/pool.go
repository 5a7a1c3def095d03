// Package parserpool keeps a pool of gnparser instances for parsing
// scientific names concurrently. Parsing is computation, not I/O.
package parserpool

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool parses names with parsers of botanical or zoological code.
type Pool interface {
	// Parse parses a name string with a parser of the given code. It is
	// safe for concurrent use and blocks while all parsers are busy.
	Parse(nameString string, code nomcode.Code) (parsed.Parsed, error)

	// Close releases parsers. The pool cannot be used afterwards.
	Close()
}

type pool struct {
	botanical  chan gnparser.GNparser
	zoological chan gnparser.GNparser
}

// New creates a pool with jobsNum parsers per nomenclatural code.
// Zero jobsNum means runtime.NumCPU().
func New(jobsNum int) Pool {
	if jobsNum <= 0 {
		jobsNum = runtime.NumCPU()
	}

	return &pool{
		botanical:  newCh(nomcode.Botanical, jobsNum),
		zoological: newCh(nomcode.Zoological, jobsNum),
	}
}

func newCh(code nomcode.Code, size int) chan gnparser.GNparser {
	cfg := gnparser.NewConfig(
		gnparser.OptCode(code),
		gnparser.OptWithDetails(true),
	)
	return gnparser.NewPool(cfg, size)
}

// CodeFor returns the nomenclatural code that governs names of a
// taxonomic category. Plants follow the botanical code, everything else
// in park inventories is an animal or a fungus handled as zoological.
func CodeFor(category string) nomcode.Code {
	cat := strings.ToLower(category)
	if strings.Contains(cat, "plant") {
		return nomcode.Botanical
	}
	return nomcode.Zoological
}

func (p *pool) Parse(nameString string, code nomcode.Code) (parsed.Parsed, error) {
	var ch chan gnparser.GNparser
	switch code {
	case nomcode.Botanical:
		ch = p.botanical
	case nomcode.Zoological:
		ch = p.zoological
	default:
		return parsed.Parsed{}, fmt.Errorf("unsupported nomenclatural code: %v", code)
	}

	parser := <-ch
	res := parser.ParseName(nameString)
	ch <- parser
	return res, nil
}

func (p *pool) Close() {
	for _, ch := range []chan gnparser.GNparser{p.botanical, p.zoological} {
		close(ch)
		for range ch {
		}
	}
}
