package common

import (
	"path"
	"regexp"
)

var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

// PkgAlias returns the name a package path is referred to by in source: the
// last path element, skipping a trailing major version ("example.com/x/v2"
// -> "x"). Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if majorVersion.MatchString(base) && path.Dir(pkgPath) != "." {
		return path.Base(path.Dir(pkgPath))
	}

	return base
}
