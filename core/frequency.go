package core

import "github.com/huangsam/trustscore/schema"

// ReleaseFrequency returns the average number of days between releases,
// derived from the first and last publication timestamps. Histories with
// fewer than two dated releases have no measurable cadence and return 0.
func ReleaseFrequency(releases []schema.Release) float64 {
	if len(releases) < 2 {
		return 0
	}

	first := releases[0].PublishedAt
	last := releases[len(releases)-1].PublishedAt
	if first.IsZero() || last.IsZero() {
		return 0
	}

	span := last.Sub(first)
	if span < 0 {
		// Releases may be dated oddly; an inverted span has no meaning.
		return 0
	}

	days := span.Hours() / 24
	return days / float64(len(releases)-1)
}
