package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
)

var pathUnsafe = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "-",
	"\"", "'",
	"<", "(",
	">", ")",
	"|", "-",
	"\x00", "",
)

// SafeFileName replaces characters that are not allowed in file names on
// common filesystems.
func SafeFileName(name string) string {
	return strings.TrimSpace(pathUnsafe.Replace(name))
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("filename") {
		_ = pongo2.RegisterFilter("filename", filterFileName)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

func filterFileName(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(SafeFileName(in.String())), nil
}
