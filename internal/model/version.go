// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import "fmt"

// Version is a parsed vMAJOR.MINOR.PATCH triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the canonical "vX.Y.Z" form.
func (v Version) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to,
// or after o.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		return cmpInt(v.Major, o.Major)
	case v.Minor != o.Minor:
		return cmpInt(v.Minor, o.Minor)
	default:
		return cmpInt(v.Patch, o.Patch)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ApiVersion is one increment of the extension function table.
type ApiVersion struct {
	Version Version
	// Entries are the names of the functions introduced at this version, in
	// table order.
	Entries []string
	Source  Source
}
