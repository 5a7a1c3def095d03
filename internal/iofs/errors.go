package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnparks/pkg/errcode"
)

// HomeDirError is returned when one of GNparks directories cannot be
// created.
func HomeDirError(dir string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.HomeDirError,
		Msg:  "Cannot create directory <em>%s</em>",
		Vars: []any{dir},
		Err:  fmt.Errorf("from %s: mkdir %s: %w", fn, dir, err),
	}
}

// WriteConfigError is returned when the default config.yaml cannot be
// written.
func WriteConfigError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.WriteConfigError,
		Msg:  "Cannot write default configuration to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: write config %s: %w", fn, path, err),
	}
}

// ReadConfigError is returned when config.yaml cannot be read or does not
// match Config fields.
func ReadConfigError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ReadConfigError,
		Msg:  "Cannot read configuration from <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: read config %s: %w", fn, path, err),
	}
}

// EnvFileError is returned when a .env file exists but cannot be parsed.
func EnvFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.EnvFileError,
		Msg:  "Cannot load environment from <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: load %s: %w", fn, path, err),
	}
}
