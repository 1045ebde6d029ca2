package store

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
)

// Schema is the canonical DDL for the service. hack/sql.go applies the same
// statements from the command line.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS user (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now')),
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);`,
	`CREATE TABLE IF NOT EXISTS transcription (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		owner_id INTEGER NOT NULL,
		stored_name TEXT NOT NULL,
		original_name TEXT NOT NULL,
		media_kind TEXT NOT NULL,
		media_format TEXT NOT NULL,
		size_bytes INTEGER NOT NULL DEFAULT 0,
		duration_seconds REAL,
		transcription_text TEXT NOT NULL,
		language TEXT NOT NULL DEFAULT 'pt',
		processing_seconds REAL NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL DEFAULT (datetime('now')),
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);`,
	`CREATE INDEX IF NOT EXISTS idx_transcription_owner_created
		ON transcription (owner_id, created_at);`,
}

// Init creates the tables when they do not exist yet.
func Init(ctx context.Context) error {
	db := g.DB()
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return gerror.Wrap(err, "schema initialization failed")
		}
	}
	return nil
}
