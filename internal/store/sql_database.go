// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-media-mirror/internal/config"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/migrations"
)

// DB wraps a *sql.DB together with the SQL dialect details the document
// store needs.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg.DB, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
