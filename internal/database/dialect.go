package database

// Dialect renders the run history for one SQL engine.
type Dialect interface {
	// DriverName returns the database/sql driver name.
	DriverName() string

	// Placeholder returns the bind marker for the 1-indexed argument position.
	Placeholder(position int) string

	// SessionStatements run once after the connection opens.
	SessionStatements() []string

	// RunsSchema returns the statements creating generation_runs and its
	// indexes. Every statement must be safe to run again.
	RunsSchema() []string

	// ReturnsRunID reports whether INSERT hands the new run ID back through
	// a RETURNING clause instead of LastInsertId.
	ReturnsRunID() bool

	// IsDuplicateRun reports whether err came from the unique seed and
	// fingerprint index.
	IsDuplicateRun(err error) bool
}

// DialectType identifies the database dialect.
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect creates a new Dialect for the given type.
func NewDialect(dialectType DialectType) Dialect {
	switch dialectType {
	case DialectPostgres:
		return &PostgresDialect{}
	default:
		return &SQLiteDialect{}
	}
}

// runIndexes are shared by both engines.
var runIndexes = []string{
	// A seed and config pair always yields the same dungeon.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_generation_runs_seed_fingerprint
		ON generation_runs(seed, fingerprint)`,
	`CREATE INDEX IF NOT EXISTS idx_generation_runs_created_at
		ON generation_runs(created_at)`,
}
