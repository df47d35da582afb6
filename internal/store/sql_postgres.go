// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-media-mirror/internal/config"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/migrations"
)

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		placeholder:        sq.Dollar,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}
