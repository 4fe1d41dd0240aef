package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-master-password/internal/config"
	"github.com/MKhiriev/go-master-password/internal/logger"
)

// Storages groups all storage repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// SiteRepository stores site metadata in SQLite or PostgreSQL.
	SiteRepository SiteRepository

	db *DB
}

// NewStorages initialises the storage layer. It performs the following
// steps:
//  1. Opens the database named by cfg.DB.DSN (SQLite file, created if
//     missing, or a postgres:// URL).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [SiteRepository] to the connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		SiteRepository: NewSiteRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Dialect names the database behind the storages ("sqlite3" or "postgres").
func (s *Storages) Dialect() string {
	if s == nil || s.db == nil {
		return ""
	}
	return s.db.dialect
}
