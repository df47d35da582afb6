// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLStore(t *testing.T) (DocumentStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	s := NewSQLDocumentStore(&DB{
		DB:                 db,
		placeholder:        sq.Question,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}, NamespaceMirror, l)
	return s, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

func TestSQLDocumentStore_Load(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	mock.ExpectQuery(q("SELECT section FROM mirror_sections WHERE document = ? AND namespace = ?")).
		WithArgs("srv", NamespaceMirror).
		WillReturnRows(sqlmock.NewRows([]string{"section"}).AddRow("0").AddRow("1"))
	mock.ExpectQuery(q("SELECT section, option_name, option_value FROM mirror_options")).
		WithArgs("srv", NamespaceMirror).
		WillReturnRows(sqlmock.NewRows([]string{"section", "option_name", "option_value"}).
			AddRow("0", "1", "Music").
			AddRow("0", "2", "song.mp3"))

	doc, err := s.Load(context.Background(), "srv")
	require.NoError(t, err)

	want := models.NewSections()
	want.Set("0", "1", "Music")
	want.Set("0", "2", "song.mp3")
	want.Add("1")
	assert.Equal(t, want, doc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLDocumentStore_LoadQueryError(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT section FROM mirror_sections").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := s.Load(context.Background(), "srv")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLDocumentStore_SaveReplacesDocumentInOneTransaction(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	doc := models.NewSections()
	doc.Set("0", "1", "Music")
	doc.Add("1")

	mock.ExpectBegin()
	mock.ExpectExec(q("DELETE FROM mirror_options WHERE document = ? AND namespace = ?")).
		WithArgs("srv", NamespaceMirror).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(q("DELETE FROM mirror_sections WHERE document = ? AND namespace = ?")).
		WithArgs("srv", NamespaceMirror).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(q("INSERT INTO mirror_sections (namespace,document,section) VALUES (?,?,?),(?,?,?)")).
		WithArgs(NamespaceMirror, "srv", "0", NamespaceMirror, "srv", "1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(q("INSERT INTO mirror_options (namespace,document,section,option_name,option_value) VALUES (?,?,?,?,?)")).
		WithArgs(NamespaceMirror, "srv", "0", "1", "Music").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Save(context.Background(), "srv", doc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLDocumentStore_SaveEmptyDocumentOnlyDeletes(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM mirror_options").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM mirror_sections").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, s.Save(context.Background(), "srv", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLDocumentStore_SaveRollsBackOnInsertError(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	doc := models.NewSections()
	doc.Add("0")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM mirror_options").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM mirror_sections").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO mirror_sections").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	err := s.Save(context.Background(), "srv", doc)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLDocumentStore_RetryableErrorIsNotRetried(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectBegin()

	err := s.Remove(context.Background(), "srv")
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.Error(t, mock.ExpectationsWereMet(), "second transaction must not be started")
}

func TestSQLDocumentStore_EmptyName(t *testing.T) {
	s, _, db := newTestSQLStore(t)
	defer db.Close()

	ctx := context.Background()
	_, err := s.Load(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDocumentName)
	assert.ErrorIs(t, s.Save(ctx, "", nil), ErrInvalidDocumentName)
	assert.ErrorIs(t, s.Remove(ctx, ""), ErrInvalidDocumentName)
}
