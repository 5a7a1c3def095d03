// Package errcode enumerates error codes of GNparks. The codes travel
// inside *gn.Error and let callers and tests tell failures apart.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Home directory and configuration
	HomeDirError
	WriteConfigError
	ReadConfigError
	EnvFileError

	// Logging
	OpenLogError

	// Data load
	DataLoadSourceError
	DataLoadOpenError
	DataLoadReadError
	DataLoadColumnError
	DataLoadValueError
	DataLoadEmptyError

	// Web server
	ServerListenError
)
