package core

import "strings"

// majorOf returns the component before the first '.', or the whole string
// when no dot is present.
func majorOf(version string) string {
	major, _, _ := strings.Cut(version, ".")
	return major
}

// SplitMajors partitions an ordered version history into major-version-aligned
// groups. Majors are visited in first-seen order and each group collects every
// version in the input whose major matches, so interleaved majors still end up
// in a single group. Every input version lands in exactly one group and each
// group keeps the original relative ordering of its members.
//
// Groups reset compatibility expectations at major boundaries: comparisons
// never cross from one major into another.
func SplitMajors(versions []string) [][]string {
	var groups [][]string
	seen := make(map[string]struct{})

	for _, v := range versions {
		major := majorOf(v)
		if _, ok := seen[major]; ok {
			continue
		}
		seen[major] = struct{}{}

		var group []string
		for _, w := range versions {
			if majorOf(w) == major {
				group = append(group, w)
			}
		}
		groups = append(groups, group)
	}

	return groups
}
