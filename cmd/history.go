package cmd

import (
	"fmt"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/internal/histstore"
	"github.com/huangsam/trustscore/internal/outwriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// openHistoryStore opens the configured run-history store, failing the command
// when the backend is unreachable.
func openHistoryStore() contract.HistoryStore {
	store, err := histstore.NewHistoryStore(cfg.HistoryBackend, cfg.HistoryDBConnect)
	if err != nil {
		contract.LogFatal("Cannot open run history store", err)
	}
	return store
}

// historyCmd focused on run-history management.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the scoring run history",
	Long: `Manage the store of past scoring runs.

Every 'trustscore score' run is recorded with its compatibility tallies,
scorecard score and release cadence, enabling trend tracking across
re-scores of the same artifact.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run count and backend details
  list    - Show the most recent runs
  clear   - Remove all recorded runs
  export  - Export runs to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # See what has been scored lately
  trustscore history list --limit 10

  # Export for analysis in pandas/DuckDB
  trustscore history export --output-file runs`,
}

// historyStatusCmd shows history store status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run-history statistics and connection details",
	Long: `Show the configured history backend and how many runs it holds.

Use this to:
- Verify run tracking is enabled and the backend is reachable
- Monitor data accumulation over time

Examples:
  # Check history status
  trustscore history status`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openHistoryStore()
		defer func() { _ = store.Close() }()

		count, err := store.CountRuns()
		if err != nil {
			contract.LogFatal("Failed to count stored runs", err)
		}
		fmt.Printf("History backend: %s\n", store.Backend())
		fmt.Printf("Stored runs:     %d\n", count)
	},
}

// historyListCmd lists recent scoring runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent scoring runs",
	Long: `List recorded scoring runs, newest first.

Each row shows when the run finished, the artifact coordinate, the
compatibility score with its label, and the scorecard score if one was
obtained.

Examples:
  # Last 25 runs (default limit)
  trustscore history list

  # Machine-readable history
  trustscore history list --output csv --limit 100`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openHistoryStore()
		defer func() { _ = store.Close() }()

		runs, err := store.ListRuns(cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Failed to list stored runs", err)
		}
		if err := outwriter.WriteRunHistory(runs, cfg); err != nil {
			contract.LogFatal("Cannot write run history", err)
		}
	},
}

// historyClearCmd clears the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded scoring runs",
	Long: `Delete every stored scoring run from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  trustscore history export --output-file backup
  trustscore history clear`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openHistoryStore()
		defer func() { _ = store.Close() }()

		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// historyExportCmd exports run history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all recorded scoring runs to Parquet format.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Requires: --output-file parameter (used as the file prefix)

Examples:
  # Export all runs
  trustscore history export --output-file trustscore-data

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('trustscore-data.runs.parquet') LIMIT 10"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openHistoryStore()
		defer func() { _ = store.Close() }()

		if err := histstore.ExecuteExport(store, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run-history store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  trustscore history migrate

  # Rollback to initial state
  trustscore history migrate --target-version 0`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := histstore.Migrate(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
