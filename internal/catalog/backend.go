// SQLite backend lifecycle: attach, table routing, detach.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/targetspec/pkg/types"
)

// dbFileName is the SQLite cache file inside the data directory. The file
// is rebuilt from JSONL on every attach; deleting it loses nothing.
const dbFileName = "catalog.db"

// Backend implements types.Catalog with SQLite as the query engine and
// JSONL files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tables   map[string]types.Table
}

// NewBackend creates an unattached backend; call Attach with a Config to
// initialize.
func NewBackend() *Backend {
	return &Backend{
		tables: make(map[string]types.Table),
	}
}

// GetTable returns a Table accessor for the given standard table name.
// Returns ErrTableNotFound for unknown names and ErrCatalogDetached when
// the backend is not attached.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCatalogDetached
	}
	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// Attach initializes the backend: creates the data directory, rebuilds the
// SQLite file from JSONL, and seeds any builtin platforms missing from the
// catalog. Returns ErrAlreadyAttached when already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// JSONL is truth: drop any stale database and rebuild.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	for _, ddl := range append(append([]string(nil), schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("executing schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.config.DataDir = dataDir

	if err := ensureJSONLFiles(dataDir); err != nil {
		db.Close()
		return err
	}
	if err := b.loadAllJSONL(); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}
	if err := b.seedBuiltinPlatforms(); err != nil {
		db.Close()
		return fmt.Errorf("seed builtins: %w", err)
	}

	b.attached = true
	b.tables[types.PlatformsTable] = &platformsTable{backend: b}
	b.tables[types.FeaturesTable] = &featuresTable{backend: b}

	return nil
}

// Detach closes the SQLite connection. Idempotent; after Detach all table
// operations return ErrCatalogDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	b.tables = make(map[string]types.Table)
	return nil
}

// DataDir returns the effective data directory after Attach.
func (b *Backend) DataDir() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config.DataDir
}

// checkAttached guards table operations that run outside the backend lock.
func (b *Backend) checkAttached() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return types.ErrCatalogDetached
	}
	return nil
}

// generateUUID generates a UUID v7 for record IDs, falling back to v4 if
// v7 generation fails.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
