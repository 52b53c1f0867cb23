// Package database owns the on-device books table: its schema, the additive
// migrations that bring older databases forward, and the four CRUD
// operations over book records.
//
// The store follows the mobile-app failure contract: no error crosses this
// boundary. Every failure is logged and absorbed, and the caller observes a
// degraded result instead (nil record, empty slice, false). A store that
// failed to initialize keeps accepting calls and no-ops them.
package database

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/okozlova/bookshelf/internal/entities"
)

// Baseline schema as written by the first released version of the app. The
// optional columns that arrived later are handled by migrations below.
const createBooksTable = `
CREATE TABLE IF NOT EXISTS books (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	photo TEXT,
	description TEXT,
	rating INTEGER,
	tags TEXT,
	category TEXT
);`

// columnMigration is one additive schema step: the column it introduces, the
// DDL that adds it, and an optional backfill over pre-existing rows.
type columnMigration struct {
	column   string
	ddl      string
	backfill string
}

// Migrations are additive only: columns are appended with defaults, nothing
// is ever removed or renamed. Order matters for databases several versions
// behind.
var migrations = []columnMigration{
	{
		column:   "genres",
		ddl:      "ALTER TABLE books ADD COLUMN genres TEXT",
		backfill: "UPDATE books SET genres = json_array(category) WHERE category IS NOT NULL AND category <> ''",
	},
	{
		column: "spicyLevel",
		ddl:    "ALTER TABLE books ADD COLUMN spicyLevel INTEGER DEFAULT 1",
	},
	{
		column: "author",
		ddl:    "ALTER TABLE books ADD COLUMN author TEXT",
	},
	{
		column: "title",
		ddl:    "ALTER TABLE books ADD COLUMN title TEXT",
	},
}

// Store owns the sqlite handle for the books table. It has exactly two
// states: uninitialized (db == nil) and initialized. A failed Initialize
// leaves it uninitialized and a later call retries; the handle is never
// closed once open (process lifetime).
type Store struct {
	path string
	log  *zap.Logger

	mu sync.Mutex
	db *gorm.DB
}

// New constructs an uninitialized store. Call Initialize before issuing
// reads or writes; until then every operation degrades to a no-op.
func New(path string, log *zap.Logger) *Store {
	return &Store{path: path, log: log}
}

// Initialize opens the database, ensures the baseline table exists and runs
// the additive migrations. Idempotent and safe for concurrent callers:
// later callers block until the first attempt finishes and observe its
// outcome. Reports whether the store is ready; on failure the cause is
// logged and the store stays uninitialized.
func (s *Store) Initialize() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return true
	}

	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		s.log.Error("opening book database", zap.String("path", s.path), zap.Error(err))
		return false
	}

	if err := db.Exec(createBooksTable).Error; err != nil {
		s.log.Error("creating books table", zap.Error(err))
		return false
	}

	if err := migrate(db); err != nil {
		s.log.Error("migrating books table", zap.Error(err))
		return false
	}

	s.db = db
	s.log.Info("book store initialized", zap.String("path", s.path))
	return true
}

// migrate appends whichever optional columns the database predates. Existing
// columns are detected and skipped, so running against an up-to-date schema
// changes nothing.
func migrate(db *gorm.DB) error {
	for _, step := range migrations {
		if db.Migrator().HasColumn(&entities.Book{}, step.column) {
			continue
		}
		if err := db.Exec(step.ddl).Error; err != nil {
			return fmt.Errorf("adding column %s: %w", step.column, err)
		}
		if step.backfill == "" {
			continue
		}
		if err := db.Exec(step.backfill).Error; err != nil {
			return fmt.Errorf("backfilling column %s: %w", step.column, err)
		}
	}
	return nil
}

// handle returns the open connection, or nil (logged) when the store was
// never successfully initialized.
func (s *Store) handle(op string) *gorm.DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		s.log.Error("book store not initialized", zap.String("op", op))
	}
	return s.db
}
