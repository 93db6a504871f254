// Package schema has configs, models and global variables for all parts of trustscore.
package schema

import "time"

// Coordinate uniquely names a Maven artifact across its version history.
type Coordinate struct {
	GroupID    string `json:"group_id"`
	ArtifactID string `json:"artifact_id"`
}

// String returns the canonical groupId:artifactId form.
func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID
}

// IsZero reports whether the coordinate is empty.
func (c Coordinate) IsZero() bool {
	return c.GroupID == "" && c.ArtifactID == ""
}

// Release is a single published version of an artifact.
type Release struct {
	Version     string    `json:"version"`
	PublishedAt time.Time `json:"published_at,omitzero"`
}

// ProjectInfo is registry-sourced project metadata for one coordinate.
type ProjectInfo struct {
	RepositoryURL string    `json:"repository_url,omitempty"`
	Releases      []Release `json:"releases,omitempty"`
}

// Transition is an ordered pair of adjacent versions within one major group.
type Transition struct {
	Older string `json:"older"`
	Newer string `json:"newer"`
}

// GroupTally holds per-major-group counts of transitions and compatible outcomes.
// Compatible counts include assumed-compatible outcomes: when no code artifact
// exists to break, the update cannot be incompatible.
type GroupTally struct {
	Transitions         int // Total adjacent pairs compared in the group
	Compatible          int // Pairs that were compatible or assumed-compatible
	MinorAmounts        int // Pairs classified as minor updates
	MinorCompatible     int
	PatchAmounts        int // Pairs classified as patch updates
	PatchCompatible     int
	IrregularAmounts    int // Pairs with non-semver versions on either side
	IrregularCompatible int

	// TotalScore is Compatible divided by the size of the whole version history,
	// not the group size. This weights each group by its relative contribution
	// when an artifact spans multiple majors.
	TotalScore float64
}

// ScoreRecord is the final compatibility output for one artifact coordinate.
// All ratios are in [0, 1] and are 0 whenever their denominator is 0.
type ScoreRecord struct {
	Coordinate       Coordinate `json:"coordinate"`
	TotalAmounts     int        `json:"total_amounts"`
	TotalScore       float64    `json:"total_score"`
	MinorAmounts     int        `json:"minor_amounts"`
	MinorScore       float64    `json:"minor_score"`
	PatchAmounts     int        `json:"patch_amounts"`
	PatchScore       float64    `json:"patch_score"`
	IrregularAmounts int        `json:"irregular_amounts"`
	IrregularScore   float64    `json:"irregular_score"`
}

// TransitionCount returns the number of classified transitions across all groups.
func (r ScoreRecord) TransitionCount() int {
	return r.MinorAmounts + r.PatchAmounts + r.IrregularAmounts
}

// ScorecardResult holds the outcome of an OpenSSF scorecard run.
type ScorecardResult struct {
	Score     float64 `json:"score"`
	RawOutput string  `json:"raw_output,omitempty"`
	Available bool    `json:"available"`
}

// TrustReport is the blended output of a full scoring run.
type TrustReport struct {
	Coordinate    Coordinate      `json:"coordinate"`
	RepositoryURL string          `json:"repository_url,omitempty"`
	Compatibility ScoreRecord     `json:"compatibility"`
	Scorecard     ScorecardResult `json:"scorecard"`

	// ReleaseFrequencyDays is the average number of days between releases,
	// 0 when fewer than two releases exist.
	ReleaseFrequencyDays float64 `json:"release_frequency_days"`

	Releases int           `json:"releases"`
	Duration time.Duration `json:"duration_ns"`
}
