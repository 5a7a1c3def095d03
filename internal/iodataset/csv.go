package iodataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const bom = "\uFEFF"

func readCSV(path string) (*frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ReadError(path, errors.New("file is empty"))
	}
	if err != nil {
		return nil, ReadError(path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}

	res := frame{header: header}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ReadError(path, err)
		}
		line, _ := r.FieldPos(0)
		if len(rec) > len(header) {
			return nil, ReadError(path, fmt.Errorf(
				"line %d: expected %d fields, got %d", line, len(header), len(rec),
			))
		}
		// missing trailing cells are empty, so short rows dedup with
		// their full-width twins
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		res.add(line, rec)
	}
	return &res, nil
}
