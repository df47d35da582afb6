// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-media-mirror/models"
)

const (
	sectionsTable = "mirror_sections"
	optionsTable  = "mirror_options"

	colNamespace   = "namespace"
	colDocument    = "document"
	colSection     = "section"
	colOptionName  = "option_name"
	colOptionValue = "option_value"
)

func documentKey(namespace, name string) sq.Eq {
	return sq.Eq{colNamespace: namespace, colDocument: name}
}

// buildSelectSectionsQuery selects the section names of one document.
func buildSelectSectionsQuery(b sq.StatementBuilderType, namespace, name string) (string, []any, error) {
	return b.Select(colSection).
		From(sectionsTable).
		Where(documentKey(namespace, name)).
		OrderBy(colSection).
		ToSql()
}

// buildSelectOptionsQuery selects every option of one document.
func buildSelectOptionsQuery(b sq.StatementBuilderType, namespace, name string) (string, []any, error) {
	return b.Select(colSection, colOptionName, colOptionValue).
		From(optionsTable).
		Where(documentKey(namespace, name)).
		OrderBy(colSection, colOptionName).
		ToSql()
}

func buildDeleteOptionsQuery(b sq.StatementBuilderType, namespace, name string) (string, []any, error) {
	return b.Delete(optionsTable).Where(documentKey(namespace, name)).ToSql()
}

func buildDeleteSectionsQuery(b sq.StatementBuilderType, namespace, name string) (string, []any, error) {
	return b.Delete(sectionsTable).Where(documentKey(namespace, name)).ToSql()
}

// maxRowsPerInsert bounds a multi-row INSERT so the parameter count stays
// below the PostgreSQL limit.
const maxRowsPerInsert = 500

// optionRow is one persisted option.
type optionRow struct {
	section, option, value string
}

func optionRows(doc models.Sections) []optionRow {
	var rows []optionRow
	for _, section := range doc.Names() {
		for _, option := range doc.Options(section) {
			rows = append(rows, optionRow{section: section, option: option, value: doc[section][option]})
		}
	}
	return rows
}

// buildInsertSectionsQuery inserts the given sections in one statement.
func buildInsertSectionsQuery(b sq.StatementBuilderType, namespace, name string, sections []string) (string, []any, error) {
	insert := b.Insert(sectionsTable).Columns(colNamespace, colDocument, colSection)
	for _, section := range sections {
		insert = insert.Values(namespace, name, section)
	}
	return insert.ToSql()
}

// buildInsertOptionsQuery inserts the given options in one statement.
func buildInsertOptionsQuery(b sq.StatementBuilderType, namespace, name string, rows []optionRow) (string, []any, error) {
	insert := b.Insert(optionsTable).Columns(colNamespace, colDocument, colSection, colOptionName, colOptionValue)
	for _, r := range rows {
		insert = insert.Values(namespace, name, r.section, r.option, r.value)
	}
	return insert.ToSql()
}

// chunks splits n rows into [from, to) ranges of at most size rows.
func chunks(n, size int) [][2]int {
	var out [][2]int
	for from := 0; from < n; from += size {
		to := min(from+size, n)
		out = append(out, [2]int{from, to})
	}
	return out
}
