package cmd

import (
	"fmt"
	"strings"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/internal/registry"
	"github.com/huangsam/trustscore/internal/scorecard"
	"github.com/spf13/cobra"
)

// scorecardCmd runs only the security scorecard.
var scorecardCmd = &cobra.Command{
	Use:   "scorecard <coordinate>",
	Short: "Run the OpenSSF scorecard for an artifact's repository.",
	Long: `Run the OpenSSF scorecard against the source repository of one Maven
artifact, resolved through libraries.io metadata.

Scorecard only understands GitHub-hosted projects; artifacts hosted
elsewhere fail with a clear message instead of a partial result.

Requires: docker. Set TRUSTSCORE_GITHUB_TOKEN to raise the GitHub API
rate limit for scorecard's checks.

Examples:
  # Security posture only
  trustscore scorecard org.apache.commons:commons-lang3

  # Keep the full check-by-check JSON
  trustscore scorecard org.apache.commons:commons-lang3 --full-scorecard`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: coordinateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		client := registry.NewClient(cfg)

		info, err := client.FetchProjectInfo(rootCtx, cfg.Coordinate)
		if err != nil {
			contract.LogFatal("Cannot fetch project metadata", err)
		}
		if !strings.Contains(info.RepositoryURL, "github.com") {
			contract.LogFatal("Cannot run scorecard", fmt.Errorf("no GitHub repository found for %s", cfg.Coordinate))
		}

		if err := scorecard.EnsureImage(rootCtx, &scorecard.LocalDockerRunner{}, cfg.ScorecardImage); err != nil {
			contract.LogFatal("Cannot pull the scorecard image", err)
		}

		result, err := scorecard.NewClient(cfg).Score(rootCtx, info.RepositoryURL, cfg.FullScorecard)
		if err != nil {
			contract.LogFatal("Scorecard run failed", err)
		}

		label := contract.GetPlainLabel(result.Score / 10)
		if cfg.UseColors {
			label = contract.GetColorLabel(result.Score / 10)
		}
		fmt.Printf("Scorecard score for %s: %.2f/10 (%s)\n", cfg.Coordinate, result.Score, label)
		if result.RawOutput != "" {
			fmt.Println(result.RawOutput)
		}
	},
}
