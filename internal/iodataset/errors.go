package iodataset

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnparks/pkg/errcode"
)

// SourceError is returned when a data source URI cannot be parsed.
func SourceError(uri string, err error) error {
	msg := "Cannot understand data source <em>%s</em>"
	vars := []any{uri}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DataLoadSourceError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad source %q: %w", fn, uri, err),
	}
}

// OpenError is returned when a file or database cannot be opened.
func OpenError(src string, err error) error {
	msg := "Cannot open data source <em>%s</em>"
	vars := []any{src}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DataLoadOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn, src, err),
	}
}

// ReadError is returned when a source is opened but its rows cannot be
// read.
func ReadError(src string, err error) error {
	msg := "Cannot read data from <em>%s</em>"
	vars := []any{src}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DataLoadReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, src, err),
	}
}

// ColumnError is returned when a required column is absent.
func ColumnError(src, col string) error {
	msg := "Data source <em>%s</em> has no column <em>%s</em>"
	vars := []any{src, col}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DataLoadColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: required column %q is missing in %s",
			fn, col, src),
	}
}

// ValueError reports an observations cell that is not an integer.
func ValueError(src string, line int, col, val string) error {
	msg := "Bad %s value <em>%s</em> in <em>%s</em>, line %d"
	vars := []any{col, val, src, line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DataLoadValueError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s:%d: %q is not an integer %s",
			fn, src, line, val, col),
	}
}

// EmptyError is returned when the merged table has no records.
func EmptyError(obs, spp string) error {
	msg := "No records in common between <em>%s</em> and <em>%s</em>"
	vars := []any{obs, spp}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DataLoadEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: merged table is empty", fn),
	}
}
