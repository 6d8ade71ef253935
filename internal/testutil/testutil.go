// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test fixtures. Tests use the cgo sqlite
// driver with an in-memory database so the full migration set runs without
// touching disk.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/terramia/faq-go/internal/store"
)

// NewDB opens an in-memory database with the full schema applied. The
// database is closed when the test finishes.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// An in-memory database lives in a single connection.
	db.SetMaxOpenConns(1)

	if err := store.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
