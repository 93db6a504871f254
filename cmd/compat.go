package cmd

import (
	"time"

	"github.com/huangsam/trustscore/core"
	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/internal/outwriter"
	"github.com/huangsam/trustscore/internal/registry"
	"github.com/spf13/cobra"
)

// compatCmd runs only the compatibility engine.
var compatCmd = &cobra.Command{
	Use:   "compat <coordinate>",
	Short: "Compute only the backward-compatibility score.",
	Long: `Compute the compatibility score for one Maven artifact without the
security and cadence signals.

The release history is split into major-version groups. Within each group
every adjacent version pair is diffed with japicmp; transitions are
classified as minor, patch or irregular updates and tallied per class.
The final score is the unweighted mean of per-group compatible ratios.

Artifacts that publish no code jar (boms, parent poms) are assumed
compatible, as are versions whose jar cannot be fetched. A japicmp crash
counts as incompatible so a broken toolchain can only lower the score.

Examples:
  # Compatibility score only
  trustscore compat org.apache.commons:commons-lang3

  # More workers for artifacts spanning many majors
  trustscore compat com.fasterxml.jackson.core:jackson-databind --workers 8`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: coordinateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		client := registry.NewClient(cfg)

		comparator, err := buildComparator(client)
		if err != nil {
			contract.LogFatal("Cannot set up the compatibility toolchain", err)
		}

		versions, err := client.FetchVersions(rootCtx, cfg.Coordinate)
		if err != nil {
			contract.LogFatal("Cannot fetch version history", err)
		}

		record := core.CompatibilityScore(rootCtx, comparator, cfg.Coordinate, versions, cfg.Workers)
		if err := outwriter.WriteScoreRecord(record, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write compatibility score", err)
		}
	},
}
