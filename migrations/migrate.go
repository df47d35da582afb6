// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the document store and applies
// it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Goose dialects of the supported SQL drivers.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned by [Migrate] when called without a connection.
var ErrNilDB = errors.New("db is nil")

// Migrate applies every pending migration to db using the given goose
// dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
