package core

import (
	"context"
	"sync"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/schema"
)

// aggregateGroup folds the comparator and classifier over every adjacent pair
// in one major group, producing an immutable tally. Comparisons run strictly
// in order within the group; per-pair failures are already absorbed into the
// Outcome by the comparator, so nothing here can fail.
//
// historySize is the length of the whole ungrouped version history. The group
// ratio uses it as denominator so that groups are weighted by their relative
// contribution when an artifact spans multiple majors. A group of size 0 or 1
// yields a zero tally.
func aggregateGroup(ctx context.Context, comparator contract.ArtifactComparator, coord schema.Coordinate, group []string, historySize int) schema.GroupTally {
	var tally schema.GroupTally

	for i := 0; i+1 < len(group); i++ {
		outcome := comparator.Compare(ctx, coord, group[i], group[i+1])
		compatible := outcome.CountsAsCompatible()

		tally.Transitions++
		if compatible {
			tally.Compatible++
		}

		switch ClassifyUpdate(group[i], group[i+1]) {
		case schema.MinorUpdate:
			tally.MinorAmounts++
			if compatible {
				tally.MinorCompatible++
			}
		case schema.PatchUpdate:
			tally.PatchAmounts++
			if compatible {
				tally.PatchCompatible++
			}
		default:
			tally.IrregularAmounts++
			if compatible {
				tally.IrregularCompatible++
			}
		}
	}

	if historySize > 0 {
		tally.TotalScore = float64(tally.Compatible) / float64(historySize)
	}
	return tally
}

// AggregateScores merges per-group tallies into the final score record. The
// total score is the unweighted mean of per-group ratios; per-classification
// scores are ratios of summed counts. Every ratio is 0 when its denominator
// is 0, so empty and single-version histories report cleanly.
func AggregateScores(coord schema.Coordinate, tallies []schema.GroupTally, historySize int) schema.ScoreRecord {
	record := schema.ScoreRecord{
		Coordinate:   coord,
		TotalAmounts: historySize,
	}

	var groupScoreSum float64
	for _, t := range tallies {
		groupScoreSum += t.TotalScore
		record.MinorAmounts += t.MinorAmounts
		record.PatchAmounts += t.PatchAmounts
		record.IrregularAmounts += t.IrregularAmounts
	}

	var minorCompat, patchCompat, irregularCompat int
	for _, t := range tallies {
		minorCompat += t.MinorCompatible
		patchCompat += t.PatchCompatible
		irregularCompat += t.IrregularCompatible
	}

	if len(tallies) > 0 {
		record.TotalScore = groupScoreSum / float64(len(tallies))
	}
	if record.MinorAmounts > 0 {
		record.MinorScore = float64(minorCompat) / float64(record.MinorAmounts)
	}
	if record.PatchAmounts > 0 {
		record.PatchScore = float64(patchCompat) / float64(record.PatchAmounts)
	}
	if record.IrregularAmounts > 0 {
		record.IrregularScore = float64(irregularCompat) / float64(record.IrregularAmounts)
	}

	return record
}

// CompatibilityScore runs the full compatibility engine for one coordinate:
// split the history into major groups, tally each group, then aggregate.
// Major groups are disjoint so they are processed by a bounded worker pool;
// each worker writes to a unique index of the tallies slice, which is safe.
func CompatibilityScore(ctx context.Context, comparator contract.ArtifactComparator, coord schema.Coordinate, versions []string, workers int) schema.ScoreRecord {
	groups := SplitMajors(versions)
	tallies := make([]schema.GroupTally, len(groups))

	if workers <= 0 {
		workers = 1
	}
	if workers > len(groups) {
		workers = len(groups)
	}

	groupCh := make(chan int, len(groups))
	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			for idx := range groupCh {
				tallies[idx] = aggregateGroup(ctx, comparator, coord, groups[idx], len(versions))
			}
		})
	}

	for idx := range groups {
		groupCh <- idx
	}
	close(groupCh)
	wg.Wait()

	return AggregateScores(coord, tallies, len(versions))
}
