// Package sqlite implements the contact store on SQLite. JSONL files in the
// data directory are the source of truth: Attach loads them into a fresh
// database and every write rewrites the affected file atomically.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// dbFileName is the SQLite file created inside the data directory.
const dbFileName = "contactdesk.db"

// Backend implements types.ContactStore and types.InquirySubmitter.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	dataDir  string
	db       *sql.DB
	logger   *zap.Logger
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{logger: logger}
}

// Attach creates DataDir if needed, opens a fresh database, creates the
// schema, and loads the JSONL files. Returns types.ErrAlreadyAttached if
// already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if config.Backend != types.BackendSQLite {
		return fmt.Errorf("sqlite backend cannot attach %q: %w", config.Backend, types.ErrBackendUnknown)
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// The database is a query cache rebuilt from JSONL on every attach.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			db.Close()
			return fmt.Errorf("create schema: %w", err)
		}
	}

	for _, name := range []string{contactsFile, inquiriesFile} {
		if err := ensureJSONL(filepath.Join(dataDir, name)); err != nil {
			db.Close()
			return err
		}
	}
	if err := loadAllJSONL(ctx, db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.dataDir = dataDir
	b.attached = true
	b.logger.Debug("Attached sqlite backend", zap.String("data_dir", dataDir))
	return nil
}

// Detach closes the database. After Detach, all operations return
// types.ErrDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if err := b.db.Close(); err != nil {
		return err
	}
	b.db = nil
	return nil
}

// DataDir returns the attached data directory.
func (b *Backend) DataDir() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dataDir
}

// newUUID generates a UUID v7 string, falling back to v4.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
