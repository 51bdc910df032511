// Package sqlite implements the LevelStore port over an embedded SQLite
// database file.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Queries are built with
// Masterminds/squirrel.
//
// # Schema
//
// A single word_levels table holds the (word, pos_id, level) facts with a
// (word, pos_id) primary key. The schema is managed through versioned
// migrations embedded from the migrations/ directory.
//
// # Lifecycle
//
// The dataset is built once by the importer (see Import) and read-only
// afterwards; the LevelStore port exposes no mutation. Reads are safe for
// concurrent use through database/sql's pooling and SQLite's WAL mode.
//
// # Data Location
//
// By default, the database is stored at ~/.cefrlex/data/levels.db
package sqlite
