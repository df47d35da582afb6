// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-media-mirror/internal/config"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/migrations"
)

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectSQLite,
		placeholder:        sq.Question,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if err = os.MkdirAll(filepath.Dir(dbFile), 0o755); err != nil {
			return fmt.Errorf("error creating DB dir: %w", err)
		}
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite. Lock
// contention is retryable, everything else is not.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}
