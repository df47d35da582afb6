// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/models"
)

// Document namespaces used by the SQL backend.
const (
	NamespaceRegistry = "registry"
	NamespaceMirror   = "mirror"
)

// sqlDocumentStore keeps documents in the mirror_sections and mirror_options
// tables, partitioned by namespace.
type sqlDocumentStore struct {
	*DB
	namespace string
	logger    *logger.Logger
}

// NewSQLDocumentStore constructs a [DocumentStore] backed by db. All
// documents live under namespace.
func NewSQLDocumentStore(db *DB, namespace string, logger *logger.Logger) DocumentStore {
	logger.Debug().Str("namespace", namespace).Msg("creating sql document store")
	return &sqlDocumentStore{
		DB:        db,
		namespace: namespace,
		logger:    logger,
	}
}

func (s *sqlDocumentStore) Load(ctx context.Context, name string) (models.Sections, error) {
	if name == "" {
		return nil, ErrInvalidDocumentName
	}

	var doc models.Sections
	err := s.run(ctx, "sqlDocumentStore.Load", name, func() error {
		var err error
		doc, err = s.load(ctx, name)
		return err
	})
	return doc, err
}

func (s *sqlDocumentStore) load(ctx context.Context, name string) (models.Sections, error) {
	b := s.builder()
	doc := models.NewSections()

	query, args, err := buildSelectSectionsQuery(b, s.namespace, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	for rows.Next() {
		var section string
		if err = rows.Scan(&section); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		doc.Add(section)
	}
	if err = errors.Join(rows.Err(), rows.Close()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	query, args, err = buildSelectOptionsQuery(b, s.namespace, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err = s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var section, option, value string
		if err = rows.Scan(&section, &option, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		doc.Set(section, option, value)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return doc, nil
}

func (s *sqlDocumentStore) Save(ctx context.Context, name string, doc models.Sections) error {
	if name == "" {
		return ErrInvalidDocumentName
	}
	if doc == nil {
		doc = models.NewSections()
	}

	return s.run(ctx, "sqlDocumentStore.Save", name, func() error {
		return s.inTx(ctx, func(tx *sql.Tx) error {
			if err := s.deleteDocument(ctx, tx, name); err != nil {
				return err
			}
			return s.insertDocument(ctx, tx, name, doc)
		})
	})
}

func (s *sqlDocumentStore) Remove(ctx context.Context, name string) error {
	if name == "" {
		return ErrInvalidDocumentName
	}

	return s.run(ctx, "sqlDocumentStore.Remove", name, func() error {
		return s.inTx(ctx, func(tx *sql.Tx) error {
			return s.deleteDocument(ctx, tx, name)
		})
	})
}

func (s *sqlDocumentStore) deleteDocument(ctx context.Context, tx *sql.Tx, name string) error {
	b := s.builder()

	for _, build := range []func() (string, []any, error){
		func() (string, []any, error) { return buildDeleteOptionsQuery(b, s.namespace, name) },
		func() (string, []any, error) { return buildDeleteSectionsQuery(b, s.namespace, name) },
	} {
		query, args, err := build()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (s *sqlDocumentStore) insertDocument(ctx context.Context, tx *sql.Tx, name string, doc models.Sections) error {
	b := s.builder()

	sections := doc.Names()
	for _, c := range chunks(len(sections), maxRowsPerInsert) {
		query, args, err := buildInsertSectionsQuery(b, s.namespace, name, sections[c[0]:c[1]])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	options := optionRows(doc)
	for _, c := range chunks(len(options), maxRowsPerInsert) {
		query, args, err := buildInsertOptionsQuery(b, s.namespace, name, options[c[0]:c[1]])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (s *sqlDocumentStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// run calls op once and logs a failure together with its driver
// classification. Failures are not retried within a sync pass; a later pass
// starts over from the persisted cursor.
func (s *sqlDocumentStore) run(ctx context.Context, fn, name string, op func() error) error {
	err := op()
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("namespace", s.namespace).
		Str("document", name).
		Str("sqlstate", postgresError(err)).
		Str("class", s.classify(err).String()).
		Msg("document store operation failed")

	return err
}
