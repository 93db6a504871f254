package core

import (
	"context"
	"testing"

	"github.com/huangsam/trustscore/schema"
	"github.com/stretchr/testify/assert"
)

// stubComparator drives the engine with canned outcomes keyed by version pair.
type stubComparator struct {
	outcomes map[[2]string]schema.Outcome
	fallback schema.Outcome
}

func (s stubComparator) Compare(_ context.Context, _ schema.Coordinate, older, newer string) schema.Outcome {
	if o, ok := s.outcomes[[2]string{older, newer}]; ok {
		return o
	}
	return s.fallback
}

func alwaysComparator(outcome schema.Outcome) stubComparator {
	return stubComparator{fallback: outcome}
}

var testCoord = schema.Coordinate{GroupID: "org.example", ArtifactID: "lib"}

// TestCompatibilityScoreEmptyHistory reports zeros without dividing by zero.
func TestCompatibilityScoreEmptyHistory(t *testing.T) {
	for _, versions := range [][]string{nil, {}, {"1.0.0"}} {
		record := CompatibilityScore(t.Context(), alwaysComparator(schema.Compatible), testCoord, versions, 4)
		assert.Zero(t, record.TotalScore)
		assert.Zero(t, record.MinorScore)
		assert.Zero(t, record.PatchScore)
		assert.Zero(t, record.IrregularScore)
		assert.Zero(t, record.MinorAmounts)
		assert.Zero(t, record.PatchAmounts)
		assert.Zero(t, record.IrregularAmounts)
		assert.Equal(t, len(versions), record.TotalAmounts)
	}
}

// TestCompatibilityScoreAllCompatible checks ratios when every pair is compatible.
func TestCompatibilityScoreAllCompatible(t *testing.T) {
	versions := []string{"1.0.0", "1.1.0", "1.1.1"}
	record := CompatibilityScore(t.Context(), alwaysComparator(schema.Compatible), testCoord, versions, 2)

	assert.Equal(t, 3, record.TotalAmounts)
	assert.Equal(t, 1, record.MinorAmounts)
	assert.InEpsilon(t, 1.0, record.MinorScore, 0.001)
	assert.Equal(t, 1, record.PatchAmounts)
	assert.InEpsilon(t, 1.0, record.PatchScore, 0.001)
	assert.Zero(t, record.IrregularAmounts)

	// One group with 2 compatible transitions over a 3-version history.
	assert.InEpsilon(t, 2.0/3.0, record.TotalScore, 0.001)
}

// TestCompatibilityScoreAllIncompatible keeps amounts but zeroes every ratio.
func TestCompatibilityScoreAllIncompatible(t *testing.T) {
	versions := []string{"1.0.0", "1.1.0", "1.1.1", "2.0.0"}
	record := CompatibilityScore(t.Context(), alwaysComparator(schema.Incompatible), testCoord, versions, 2)

	assert.Zero(t, record.TotalScore)
	assert.Zero(t, record.MinorScore)
	assert.Zero(t, record.PatchScore)
	assert.Zero(t, record.IrregularScore)
	assert.Equal(t, 1, record.MinorAmounts)
	assert.Equal(t, 1, record.PatchAmounts)
	assert.Equal(t, 4, record.TotalAmounts)
}

// TestCompatibilityScoreClassificationTotality verifies that every transition
// receives exactly one label across mixed histories.
func TestCompatibilityScoreClassificationTotality(t *testing.T) {
	versions := []string{"1.0.0", "1.1.0", "1.1", "1.1.2", "2.0.0", "2.0.1", "3.0.0.0"}
	record := CompatibilityScore(t.Context(), alwaysComparator(schema.Compatible), testCoord, versions, 3)

	transitions := 0
	for _, group := range SplitMajors(versions) {
		if len(group) > 1 {
			transitions += len(group) - 1
		}
	}
	assert.Equal(t, transitions, record.TransitionCount())
}

// TestCompatibilityScoreEndToEnd walks the documented multi-group scenario.
func TestCompatibilityScoreEndToEnd(t *testing.T) {
	versions := []string{"1.0.0", "1.1.0", "1.1.1", "2.0.0"}
	comparator := stubComparator{
		outcomes: map[[2]string]schema.Outcome{
			{"1.0.0", "1.1.0"}: schema.Compatible,
			{"1.1.0", "1.1.1"}: schema.Compatible,
		},
		fallback: schema.Incompatible,
	}

	record := CompatibilityScore(t.Context(), comparator, testCoord, versions, 2)

	assert.Equal(t, 4, record.TotalAmounts)
	assert.Equal(t, 1, record.MinorAmounts)
	assert.InEpsilon(t, 1.0, record.MinorScore, 0.001)
	assert.Equal(t, 1, record.PatchAmounts)
	assert.InEpsilon(t, 1.0, record.PatchScore, 0.001)
	assert.Zero(t, record.IrregularAmounts)

	// Group 1 scores 2/4; group 2 has no transitions and scores 0.
	// The total is the unweighted mean across the two groups.
	assert.InEpsilon(t, 0.25, record.TotalScore, 0.001)
}

// TestCompatibilityScoreAssumedCompatible treats unobtainable artifacts as compatible.
func TestCompatibilityScoreAssumedCompatible(t *testing.T) {
	versions := []string{"1.0.0", "1.0.1"}
	assumed := CompatibilityScore(t.Context(), alwaysComparator(schema.AssumedCompatible), testCoord, versions, 1)
	concrete := CompatibilityScore(t.Context(), alwaysComparator(schema.Compatible), testCoord, versions, 1)
	assert.Equal(t, concrete, assumed)
}

// TestAggregateGroupSingleton yields a zero tally for 0- and 1-length groups.
func TestAggregateGroupSingleton(t *testing.T) {
	for _, group := range [][]string{nil, {"1.0.0"}} {
		tally := aggregateGroup(t.Context(), alwaysComparator(schema.Compatible), testCoord, group, 5)
		assert.Zero(t, tally.Transitions)
		assert.Zero(t, tally.Compatible)
		assert.Zero(t, tally.TotalScore)
	}
}

// TestAggregateScoresNoGroups avoids division by zero with no tallies at all.
func TestAggregateScoresNoGroups(t *testing.T) {
	record := AggregateScores(testCoord, nil, 0)
	assert.Zero(t, record.TotalScore)
	assert.Zero(t, record.TotalAmounts)
}
