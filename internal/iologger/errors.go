package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnparks/pkg/errcode"
)

// OpenLogError is returned when the log file cannot be opened for writing.
func OpenLogError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.OpenLogError,
		Msg:  "Cannot open log file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: open log %s: %w", fn, path, err),
	}
}
