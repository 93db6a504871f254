package core

import (
	"context"
	"strings"
	"time"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/schema"
)

// TrustScore runs the full scoring pipeline for one coordinate: resolve
// project metadata and the version history, then compute the compatibility
// score and the security scorecard concurrently before blending the results.
//
// Metadata failures degrade to partial reports rather than aborting the run;
// the only caller-visible failures come from the collaborators themselves
// being unavailable (surfaced when they are constructed, not here).
func TrustScore(
	ctx context.Context,
	cfg *contract.Config,
	registry contract.RegistryClient,
	comparator contract.ArtifactComparator,
	scorecard contract.ScorecardClient,
) (*schema.TrustReport, error) {
	start := time.Now()
	coord := cfg.Coordinate

	// --- 1. Resolve the version history from the package registry ---
	versions, err := registry.FetchVersions(ctx, coord)
	if err != nil {
		contract.LogWarn("Could not fetch version history, compatibility scores will be empty", err)
		versions = nil
	}

	// --- 2. Resolve project metadata (repository URL, publication dates) ---
	var repoURL string
	var frequency float64
	var releases int
	info, err := registry.FetchProjectInfo(ctx, coord)
	if err != nil {
		contract.LogWarn("Could not fetch project metadata, skipping scorecard and cadence", err)
	} else {
		frequency = ReleaseFrequency(info.Releases)
		releases = len(info.Releases)
		// Scorecard only understands GitHub-hosted projects.
		if strings.Contains(info.RepositoryURL, "github.com") {
			repoURL = info.RepositoryURL
		}
	}

	// --- 3. Run compatibility and scorecard concurrently ---
	// The two signals are independent; this mirrors the bounded two-task
	// execution of the top-level pipeline.
	var compat schema.ScoreRecord
	var security schema.ScorecardResult

	done := make(chan struct{}, scoreTaskLimit)
	go func() {
		compat = CompatibilityScore(ctx, comparator, coord, versions, cfg.Workers)
		done <- struct{}{}
	}()
	go func() {
		security = runScorecard(ctx, cfg, scorecard, repoURL)
		done <- struct{}{}
	}()
	for range scoreTaskLimit {
		<-done
	}

	return &schema.TrustReport{
		Coordinate:           coord,
		RepositoryURL:        repoURL,
		Compatibility:        compat,
		Scorecard:            security,
		ReleaseFrequencyDays: frequency,
		Releases:             releases,
		Duration:             time.Since(start),
	}, nil
}

// scoreTaskLimit caps concurrent top-level scoring tasks.
const scoreTaskLimit = 2

// runScorecard fetches the security posture for a repository, degrading to an
// unavailable result when the repository is unknown or the tool fails.
func runScorecard(ctx context.Context, cfg *contract.Config, client contract.ScorecardClient, repoURL string) schema.ScorecardResult {
	if repoURL == "" {
		contract.LogWarn("No GitHub repository found for this artifact, skipping scorecard score", nil)
		return schema.ScorecardResult{Score: -1, Available: false}
	}

	result, err := client.Score(ctx, repoURL, cfg.FullScorecard)
	if err != nil {
		contract.LogWarn("Scorecard run failed", err)
		return schema.ScorecardResult{Score: -1, Available: false}
	}
	return result
}
