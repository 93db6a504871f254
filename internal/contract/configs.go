package contract

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/huangsam/trustscore/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 2
	DefaultFetchTimeout = 10 * time.Second

	// DefaultRegistryURL is the Maven Central repository root.
	DefaultRegistryURL = "https://repo1.maven.org/maven2"

	// DefaultLibrariesURL is the libraries.io API root for the Maven platform.
	DefaultLibrariesURL = "https://libraries.io/api/Maven"

	// DefaultJapicmpVersion pins the japicmp release downloaded when no local
	// jar is configured.
	DefaultJapicmpVersion = "0.23.1"

	// DefaultScorecardImage is the OpenSSF scorecard docker image.
	DefaultScorecardImage = "gcr.io/openssf/scorecard:stable"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the timestamp layout used across writers.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a scoring run.
// This struct remains the "final, validated" config.
type Config struct {
	Coordinate schema.Coordinate

	Workers     int
	Precision   int
	ResultLimit int
	Output      schema.OutputMode
	OutputFile  string
	UseColors   bool

	FullScorecard bool
	FetchTimeout  time.Duration

	RegistryURL     string
	LibrariesURL    string
	LibrariesAPIKey string // Please use env var as this is plaintext
	GithubToken     string // Please use env var as this is plaintext

	JapicmpJar     string
	ScorecardImage string

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	CoordinateStr string

	Workers          int    `mapstructure:"workers"`
	Precision        int    `mapstructure:"precision"`
	Limit            int    `mapstructure:"limit"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Color            string `mapstructure:"color"`
	FullScorecard    bool   `mapstructure:"full-scorecard"`
	Timeout          string `mapstructure:"timeout"`
	RegistryURL      string `mapstructure:"registry-url"`
	LibrariesURL     string `mapstructure:"libraries-url"`
	LibrariesAPIKey  string `mapstructure:"libraries-api-key"`
	GithubToken      string `mapstructure:"github-token"`
	JapicmpJar       string `mapstructure:"japicmp-jar"`
	ScorecardImage   string `mapstructure:"scorecard-image"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. The coordinate is optional here since
// some commands (history, mcp) run without one; commands that need it call
// RequireCoordinate afterwards.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processEndpoints(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if input.CoordinateStr != "" {
		coord, err := schema.ParseCoordinate(input.CoordinateStr)
		if err != nil {
			return err
		}
		cfg.Coordinate = coord
	}
	return nil
}

// RequireCoordinate fails when no artifact coordinate was supplied.
func RequireCoordinate(cfg *Config) error {
	if cfg.Coordinate.IsZero() {
		return fmt.Errorf("an artifact coordinate is required (groupId:artifactId or pkg:maven/... purl)")
	}
	return nil
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 2. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 0 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 3. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 4. Color flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 5. Timeout Validation ---
	cfg.FetchTimeout = DefaultFetchTimeout
	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid --timeout value '%s': %w", input.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", d)
		}
		cfg.FetchTimeout = d
	}

	cfg.FullScorecard = input.FullScorecard
	return nil
}

// processEndpoints transfers external service endpoints and credentials.
// Credentials and tool pins are configuration, never embedded constants.
func processEndpoints(cfg *Config, input *ConfigRawInput) error {
	cfg.RegistryURL = strings.TrimSuffix(input.RegistryURL, "/")
	if cfg.RegistryURL == "" {
		cfg.RegistryURL = DefaultRegistryURL
	}
	cfg.LibrariesURL = strings.TrimSuffix(input.LibrariesURL, "/")
	if cfg.LibrariesURL == "" {
		cfg.LibrariesURL = DefaultLibrariesURL
	}
	cfg.LibrariesAPIKey = input.LibrariesAPIKey
	cfg.GithubToken = input.GithubToken
	cfg.JapicmpJar = input.JapicmpJar
	cfg.ScorecardImage = input.ScorecardImage
	if cfg.ScorecardImage == "" {
		cfg.ScorecardImage = DefaultScorecardImage
	}
	return nil
}

// validateBackendConfig validates the history backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' or use the postgres:// form")
		}
	}
	return nil
}
