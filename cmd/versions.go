package cmd

import (
	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/internal/outwriter"
	"github.com/huangsam/trustscore/internal/registry"
	"github.com/spf13/cobra"
)

// versionsCmd lists the published release history.
var versionsCmd = &cobra.Command{
	Use:   "versions <coordinate>",
	Short: "List the published release history of a Maven artifact.",
	Long: `List every published release of one Maven artifact, oldest first.

Pre-release versions (anything containing a dash, like 1.0.0-rc1 or
2.0-SNAPSHOT) are filtered out, matching what the scoring pipeline sees.

Examples:
  # Release history as text
  trustscore versions org.apache.commons:commons-lang3

  # Machine-readable history
  trustscore versions org.apache.commons:commons-lang3 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: coordinateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		client := registry.NewClient(cfg)

		versions, err := client.FetchVersions(rootCtx, cfg.Coordinate)
		if err != nil {
			contract.LogFatal("Cannot fetch version history", err)
		}

		if err := outwriter.WriteVersions(cfg.Coordinate, versions, cfg); err != nil {
			contract.LogFatal("Cannot write version history", err)
		}
	},
}
