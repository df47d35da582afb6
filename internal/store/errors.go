// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the document stores and repositories. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrInvalidDocumentName is returned when a document name is empty or
	// would escape the store root.
	ErrInvalidDocumentName = errors.New("invalid document name")

	// ErrCorruptDocument is returned when a persisted document cannot be
	// decoded or holds values of the wrong shape.
	ErrCorruptDocument = errors.New("corrupt document")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL document store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan document rows")
)
