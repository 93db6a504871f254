// Package cmd defines the command-line interface for trustscore.
package cmd

import (
	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(compatCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(scorecardCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("workers", "w", contract.DefaultWorkers, "Number of concurrent workers for major-group comparisons")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of history rows to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("timeout", "", "Per-request timeout for registry fetches (e.g. 30s)")
	rootCmd.PersistentFlags().Bool("full-scorecard", false, "Preserve the raw scorecard JSON in the report")
	rootCmd.PersistentFlags().String("registry-url", "", "Maven repository root (defaults to Maven Central)")
	rootCmd.PersistentFlags().String("libraries-url", "", "libraries.io API root for project metadata")
	rootCmd.PersistentFlags().String("libraries-api-key", "", "libraries.io API key (prefer TRUSTSCORE_LIBRARIES_API_KEY)")
	rootCmd.PersistentFlags().String("github-token", "", "GitHub token passed to scorecard (prefer TRUSTSCORE_GITHUB_TOKEN)")
	rootCmd.PersistentFlags().String("japicmp-jar", "", "Path to a local japicmp jar (downloaded on demand when unset)")
	rootCmd.PersistentFlags().String("scorecard-image", "", "OpenSSF scorecard docker image")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "Run-history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
