package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at       TEXT NOT NULL,
			root           TEXT NOT NULL,
			scanned_files  INTEGER NOT NULL,
			skipped_files  INTEGER NOT NULL,
			total_files    INTEGER NOT NULL,
			with_ext       INTEGER NOT NULL,
			without_ext    INTEGER NOT NULL,
			incomplete     BOOLEAN NOT NULL,
			version        TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS histogram_entries (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id   INTEGER NOT NULL REFERENCES scans(id),
			dimension TEXT NOT NULL,
			bucket    TEXT NOT NULL,
			count     INTEGER NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_histogram_scan
			ON histogram_entries(scan_id, dimension)`,

		`DELETE FROM schema_version`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	_, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion)
	return err
}
