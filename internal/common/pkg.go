package common

import (
	"path"
	"strings"
)

// UnknownStr is the String() value of out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitQualified splits a qualified type name like "github.com/acme/model.Pet"
// into its package path and type name. Names without a package (e.g. "int32"
// or "plain") return an empty package path.
func SplitQualified(qualified string) (pkgPath, name string) {
	// A dot inside the last path element separates package and name;
	// dots in earlier elements belong to the host ("github.com").
	slash := strings.LastIndex(qualified, "/")

	dot := strings.LastIndex(qualified[slash+1:], ".")
	if dot < 0 {
		return "", qualified
	}

	dot += slash + 1

	return qualified[:dot], qualified[dot+1:]
}
