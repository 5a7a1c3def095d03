package ioweb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnparks/pkg/errcode"
)

func ListenError(addr string, err error) error {
	msg := "Cannot start web server at <em>%s</em>"
	vars := []any{addr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ServerListenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot listen on %s: %w", fn, addr, err),
	}
}
