// Package store persists the ledger and the merchant directory in SQLite,
// and reads/writes merchant mappings as YAML.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/expense-tracker/internal/models"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// openDatabase opens (or creates) the SQLite database at path and ensures the schema exists.
func openDatabase(ctx context.Context, path, schema string) (*sql.DB, error) {
	if path != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection: the host is single-threaded and ":memory:" is per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}
