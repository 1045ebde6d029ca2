package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/glebarez/go-sqlite"
)

// Applies the service schema to a sqlite database file from the command
// line, for environments where the server has not bootstrapped it yet.
func main() {
	dbPath := flag.String("db", "./storage/knscribe.db", "path to the sqlite database file")
	flag.Parse()

	db, err := sql.Open("sqlite", *dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	statements := []string{
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
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("schema statement failed: %v", err)
		}
	}

	var users, jobs int
	_ = db.QueryRow(`SELECT COUNT(*) FROM user`).Scan(&users)
	_ = db.QueryRow(`SELECT COUNT(*) FROM transcription`).Scan(&jobs)
	log.Printf("schema ok: %s (%d users, %d transcriptions)", *dbPath, users, jobs)
}
