package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/greencloud/gcrs/internal/inventory"
)

// SaveScan persists one scan summary and all its histogram entries in a
// single transaction, returning the new scan ID.
func (db *DB) SaveScan(root, version string, sum *inventory.Summary, incomplete bool) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(
		`INSERT INTO scans
		(taken_at, root, scanned_files, skipped_files, total_files, with_ext, without_ext, incomplete, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), root,
		sum.ScannedFiles, sum.SkippedFiles, sum.TotalFiles,
		sum.FilesWithExtension, sum.FilesWithoutExtension,
		incomplete, version,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting scan: %w", err)
	}
	scanID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	histograms := map[string]map[string]int{
		DimLanguage:   sum.FilesByLanguage,
		DimCategory:   sum.FilesByCategory,
		DimExtension:  sum.FilesByExtension,
		DimDependency: sum.FilesByDependency,
		DimDataType:   sum.FilesByDataType,
		DimBinary:     sum.BinaryFilesByExtension,
	}
	for dim, hist := range histograms {
		for bucket, count := range hist {
			if _, err := tx.Exec(
				"INSERT INTO histogram_entries (scan_id, dimension, bucket, count) VALUES (?, ?, ?, ?)",
				scanID, dim, bucket, count,
			); err != nil {
				return 0, fmt.Errorf("inserting %s histogram: %w", dim, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return scanID, nil
}

// ListScans returns the most recent scans, newest first.
func (db *DB) ListScans(limit int) ([]ScanRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(
		`SELECT id, taken_at, root, scanned_files, skipped_files, total_files,
		        with_ext, without_ext, incomplete, version
		 FROM scans ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []ScanRow
	for rows.Next() {
		s, err := scanRowFrom(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, *s)
	}
	return scans, rows.Err()
}

// GetLatestScan returns the most recent scan for a root, or nil if the
// root has never been scanned.
func (db *DB) GetLatestScan(root string) (*ScanRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, taken_at, root, scanned_files, skipped_files, total_files,
		        with_ext, without_ext, incomplete, version
		 FROM scans WHERE root = ? ORDER BY id DESC LIMIT 1`, root)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanRowFrom(rows)
}

// HistogramFor loads one stored histogram for a scan.
func (db *DB) HistogramFor(scanID int64, dimension string) (map[string]int, error) {
	rows, err := db.conn.Query(
		"SELECT bucket, count FROM histogram_entries WHERE scan_id = ? AND dimension = ?",
		scanID, dimension)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hist := map[string]int{}
	for rows.Next() {
		var bucket string
		var count int
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, err
		}
		hist[bucket] = count
	}
	return hist, rows.Err()
}

func scanRowFrom(rows *sql.Rows) (*ScanRow, error) {
	var s ScanRow
	var takenAt string
	if err := rows.Scan(&s.ID, &takenAt, &s.Root, &s.ScannedFiles, &s.SkippedFiles,
		&s.TotalFiles, &s.WithExt, &s.WithoutExt, &s.Incomplete, &s.Version); err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}
