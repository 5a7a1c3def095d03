package iodataset

import "strings"

// naTokens are cell values treated as missing.
var naTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"n/a":  {},
	"NaN":  {},
	"nan":  {},
	"NULL": {},
	"null": {},
	"None": {},
	"<NA>": {},
	"#N/A": {},
}

// normalize trims a cell and returns an empty string for missing values.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if _, ok := naTokens[s]; ok {
		return ""
	}
	return s
}
