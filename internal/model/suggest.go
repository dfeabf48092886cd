// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"sort"

	"github.com/agext/levenshtein"
)

// maxSuggestionDistance matches the threshold HCL uses for its own
// "Did you mean" hints.
const maxSuggestionDistance = 3

// Suggest returns the candidate closest to name, or "" if none is close
// enough. Ties are broken alphabetically so the hint is stable.
func Suggest(name string, candidates []string) string {
	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)

	best, bestDist := "", maxSuggestionDistance
	for _, c := range sorted {
		if d := levenshtein.Distance(name, c, nil); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// UnknownSymbolItem formats an unknown-name report line with a hint when one
// is available.
func UnknownSymbolItem(name string, src Source, candidates []string) string {
	if hint := Suggest(name, candidates); hint != "" {
		return name + " (" + src.String() + "; did you mean " + hint + "?)"
	}
	return name + " (" + src.String() + ")"
}
