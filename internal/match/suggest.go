package match

import (
	"cmp"
	"slices"
)

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-byte insertions, deletions or substitutions that turn a
// into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter string, the rows are len(a)+1 long.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Suggest returns the candidates within maxDistance edits of s, closest
// first. Ties keep candidate order. s itself is never suggested.
func Suggest(s string, candidates []string, maxDistance int) []string {
	type scored struct {
		value    string
		distance int
	}

	var hits []scored

	for _, c := range candidates {
		if c == s {
			continue
		}

		if d := Levenshtein(s, c); d <= maxDistance {
			hits = append(hits, scored{value: c, distance: d})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		return cmp.Compare(a.distance, b.distance)
	})

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		if !slices.Contains(out, h.value) {
			out = append(out, h.value)
		}
	}

	return out
}
