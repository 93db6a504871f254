package schema

// Custom string types for type safety.
type (
	// UpdateType classifies a version transition.
	UpdateType string

	// Outcome is the tri-state result of comparing two build artifacts.
	Outcome string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All update types supported. Classification is total and mutually exclusive:
// every transition receives exactly one label.
const (
	MinorUpdate     UpdateType = "minor"     // 2nd version component differs
	PatchUpdate     UpdateType = "patch"     // 2nd equal, 3rd differs (or identical versions)
	IrregularUpdate UpdateType = "irregular" // non-3-part or mismatched component counts
)

// All comparison outcomes supported.
const (
	Compatible   Outcome = "compatible"
	Incompatible Outcome = "incompatible"

	// AssumedCompatible is applied when an artifact cannot be obtained, e.g.
	// parent/BOM-only coordinates that publish no jar.
	AssumedCompatible Outcome = "assumed-compatible"
)

// CountsAsCompatible reports whether the outcome counts toward compatible tallies.
func (o Outcome) CountsAsCompatible() bool {
	return o == Compatible || o == AssumedCompatible
}

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllUpdateTypes returns a list of all supported update types.
var AllUpdateTypes = []UpdateType{MinorUpdate, PatchUpdate, IrregularUpdate}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
