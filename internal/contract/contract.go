// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/trustscore/schema"
)

// RegistryClient resolves package-registry metadata for an artifact coordinate.
// This allows the scoring pipeline to be tested without network access.
type RegistryClient interface {
	// FetchVersions returns the release history for a coordinate, ordered by
	// ascending publication time with pre-release versions removed. A missing
	// artifact yields an empty list, not an error.
	FetchVersions(ctx context.Context, coord schema.Coordinate) ([]string, error)

	// FetchProjectInfo returns project metadata: the source repository URL and
	// the dated release list used for cadence computation.
	FetchProjectInfo(ctx context.Context, coord schema.Coordinate) (*schema.ProjectInfo, error)
}

// ArtifactComparator answers whether the newer of two published artifacts is
// backward-compatible with the older one.
//
// Implementations absorb every per-pair failure into the Outcome: artifacts
// that cannot be obtained resolve to assumed-compatible, and diff tool crashes
// resolve to incompatible. The call must be idempotent and side-effect-free
// from the caller's perspective.
type ArtifactComparator interface {
	Compare(ctx context.Context, coord schema.Coordinate, olderVersion, newerVersion string) schema.Outcome
}

// ScorecardClient produces a security-posture score for a source repository.
type ScorecardClient interface {
	// Score runs the scorecard for repoURL. When full is true the raw tool
	// output is preserved in the result instead of just the numeric score.
	Score(ctx context.Context, repoURL string, full bool) (schema.ScorecardResult, error)
}

// HistoryStore persists completed scoring runs for later inspection.
type HistoryStore interface {
	// RecordRun stores a run and returns its assigned identifier.
	RecordRun(rec schema.RunRecord) (int64, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]schema.RunRecord, error)

	// CountRuns returns the total number of stored runs.
	CountRuns() (int, error)

	// Clear removes all stored runs.
	Clear() error

	// Backend reports which database backend the store uses.
	Backend() schema.DatabaseBackend

	// Close releases the underlying database handle.
	Close() error
}
