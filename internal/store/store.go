package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/shahrukh04/medicine-management-app/internal/notify"
	"github.com/shahrukh04/medicine-management-app/internal/record"
)

//go:embed schema.sql
var schemaSQL string

// There is exactly one schema version and no migration path.
const schemaVersion = 1

// Store provides durable CRUD over the medicines collection.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db  *sql.DB
	bus *notify.Broadcaster
	ids *record.IDGenerator
	log *logrus.Logger
}

// Open creates or opens the medicines database at the given path and wires
// the broadcaster that receives a change signal after every committed
// mutation. A nil broadcaster disables signalling.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times, and multiple
// independent handles on the same path are safe to hold.
func Open(path string, bus *notify.Broadcaster) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1) // Single writer to avoid SQLITE_BUSY errors
	db.SetMaxIdleConns(1) // Keep one connection ready

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{
		db:  db,
		bus: bus,
		ids: record.NewIDGenerator(),
		log: logrus.StandardLogger(),
	}, nil
}

// Close closes the database connection.
// Should be called when the store is no longer needed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SetLogger replaces the store's logger. Defaults to the logrus standard
// logger.
func (s *Store) SetLogger(log *logrus.Logger) {
	if log != nil {
		s.log = log
	}
}

// SetIDGenerator replaces the record ID generator.
// Used by tests to issue deterministic IDs.
func (s *Store) SetIDGenerator(gen *record.IDGenerator) {
	if gen != nil {
		s.ids = gen
	}
}

// publish emits one change signal. Called only after a transaction's
// Commit has returned success, never on a read path.
func (s *Store) publish() {
	if s.bus != nil {
		s.bus.Publish()
	}
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates the medicines table if it doesn't exist.
// This function is idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}
