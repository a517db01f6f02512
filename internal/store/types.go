// Package store provides SQLite database access for gcrs scan history.
package store

import "time"

// ScanRow is one persisted scan summary header.
type ScanRow struct {
	ID           int64     `json:"id"`
	TakenAt      time.Time `json:"taken_at"`
	Root         string    `json:"root"`
	ScannedFiles int       `json:"scanned_files"`
	SkippedFiles int       `json:"skipped_files"`
	TotalFiles   int       `json:"total_files"`
	WithExt      int       `json:"files_with_extension"`
	WithoutExt   int       `json:"files_without_extension"`
	Incomplete   bool      `json:"incomplete"`
	Version      string    `json:"version"`
}

// Histogram dimensions as stored in histogram_entries.dimension.
const (
	DimLanguage   = "language"
	DimCategory   = "category"
	DimExtension  = "extension"
	DimDependency = "dependency"
	DimDataType   = "data_type"
	DimBinary     = "binary"
)
