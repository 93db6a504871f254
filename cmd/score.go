package cmd

import (
	"time"

	"github.com/huangsam/trustscore/core"
	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/internal/histstore"
	"github.com/huangsam/trustscore/internal/japicmp"
	"github.com/huangsam/trustscore/internal/outwriter"
	"github.com/huangsam/trustscore/internal/registry"
	"github.com/huangsam/trustscore/internal/scorecard"
	"github.com/huangsam/trustscore/schema"
	"github.com/spf13/cobra"
)

// buildComparator resolves the japicmp jar and wires the comparator on top of
// the shared registry client. A missing JVM is a configuration error, so it
// surfaces instead of degrading.
func buildComparator(client *registry.Client) (contract.ArtifactComparator, error) {
	jarPath, err := japicmp.EnsureTool(rootCtx, cfg, client)
	if err != nil {
		return nil, err
	}
	return japicmp.NewComparator(client, jarPath), nil
}

// recordRun persists one completed scoring run, warning instead of failing
// since history is a side channel of the score command.
func recordRun(report *schema.TrustReport, start, end time.Time) {
	store, err := histstore.NewHistoryStore(cfg.HistoryBackend, cfg.HistoryDBConnect)
	if err != nil {
		contract.LogWarn("Could not open run history store", err)
		return
	}
	defer func() { _ = store.Close() }()

	if _, err := store.RecordRun(schema.NewRunRecord(report, start, end)); err != nil {
		contract.LogWarn("Could not record scoring run", err)
	}
}

// scoreCmd runs the full trust pipeline for one artifact.
var scoreCmd = &cobra.Command{
	Use:   "score <coordinate>",
	Short: "Compute the blended trust report for a Maven artifact.",
	Long: `Compute the full trust report for one Maven artifact.

The pipeline resolves the artifact's release history and source repository,
then runs two independent signals concurrently:
- Compatibility: every adjacent version pair within a major line is diffed
  with japicmp to measure how often updates break binary compatibility
- Security: the OpenSSF scorecard is run against the GitHub repository

A third signal, release cadence, is derived from publication timestamps.

Requires: a JVM on PATH (for japicmp) and docker (for scorecard).

Examples:
  # Score a coordinate
  trustscore score org.apache.commons:commons-lang3

  # Score from a purl, keeping the raw scorecard JSON
  trustscore score pkg:maven/com.google.guava/guava --full-scorecard

  # Export the report for dashboards
  trustscore score org.apache.commons:commons-lang3 --output json --output-file report.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: coordinateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		client := registry.NewClient(cfg)

		comparator, err := buildComparator(client)
		if err != nil {
			contract.LogFatal("Cannot set up the compatibility toolchain", err)
		}

		report, err := core.TrustScore(rootCtx, cfg, client, comparator, scorecard.NewClient(cfg))
		if err != nil {
			contract.LogFatal("Cannot compute trust score", err)
		}

		if err := outwriter.WriteTrustReport(report, cfg); err != nil {
			contract.LogFatal("Cannot write trust report", err)
		}

		if cfg.HistoryBackend != schema.NoneBackend {
			recordRun(report, start, time.Now())
		}
	},
}
