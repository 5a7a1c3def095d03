package iodataset

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnparks/pkg/dataset"
)

// frame is a table of raw cells read from a source. Missing values are
// already normalized to empty strings.
type frame struct {
	header []string
	rows   [][]string
	// lines are positions of rows in the source, CSV lines or 1-based
	// row numbers for databases.
	lines []int
}

func (f *frame) add(line int, cells []string) {
	row := make([]string, len(cells))
	for i, v := range cells {
		row[i] = normalize(v)
	}
	f.rows = append(f.rows, row)
	f.lines = append(f.lines, line)
}

func (f *frame) columns(src string, required ...string) (map[string]int, error) {
	res := make(map[string]int, len(f.header))
	for i, v := range f.header {
		v = strings.TrimSpace(v)
		if _, ok := res[v]; !ok {
			res[v] = i
		}
	}
	for _, v := range required {
		if _, ok := res[v]; !ok {
			return nil, ColumnError(src, v)
		}
	}
	return res, nil
}

func (f *frame) observations(src string) ([]dataset.Observation, error) {
	cols, err := f.columns(src,
		dataset.ColScientificName,
		dataset.ColParkName,
		dataset.ColObservations,
	)
	if err != nil {
		return nil, err
	}
	iName := cols[dataset.ColScientificName]
	iPark := cols[dataset.ColParkName]
	iObs := cols[dataset.ColObservations]

	res := make([]dataset.Observation, 0, len(f.rows))
	for i, row := range f.rows {
		cnt, err := parseCount(cell(row, iObs))
		if err != nil {
			return nil, ValueError(src, f.lines[i],
				dataset.ColObservations, cell(row, iObs))
		}
		res = append(res, dataset.Observation{
			ScientificName: cell(row, iName),
			ParkName:       cell(row, iPark),
			Observations:   cnt,
			Row:            row,
		})
	}
	return res, nil
}

func (f *frame) species(src string) ([]dataset.Species, error) {
	cols, err := f.columns(src,
		dataset.ColScientificName,
		dataset.ColCategory,
		dataset.ColConservationStatus,
	)
	if err != nil {
		return nil, err
	}
	iName := cols[dataset.ColScientificName]
	iCat := cols[dataset.ColCategory]
	iStatus := cols[dataset.ColConservationStatus]
	iCommon, hasCommon := cols[dataset.ColCommonNames]

	res := make([]dataset.Species, 0, len(f.rows))
	for _, row := range f.rows {
		sp := dataset.Species{
			ScientificName:     cell(row, iName),
			Category:           cell(row, iCat),
			ConservationStatus: cell(row, iStatus),
			Row:                row,
		}
		if hasCommon {
			sp.CommonNames = cell(row, iCommon)
		}
		res = append(res, sp)
	}
	return res, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// maxCount bounds observation counts on every platform.
const maxCount = math.MaxInt32

// parseCount converts an observations cell. Missing values are 0,
// integral floats such as 12.0 are accepted.
func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > maxCount || n < -maxCount {
			return 0, fmt.Errorf("%q is out of range", s)
		}
		return int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if math.Abs(f) > maxCount {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return int(f), nil
}

// toString converts a database value to a cell.
func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		return t.Format(time.RFC3339)
	case driver.Valuer:
		dv, err := t.Value()
		if err != nil {
			return fmt.Sprint(t)
		}
		return toString(dv)
	default:
		return fmt.Sprint(t)
	}
}
