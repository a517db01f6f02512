// Package inventory implements the repository classification engine: a
// pruned directory walk, a per-file classifier driven by lookup tables,
// and an aggregator that folds file records into a repository summary.
package inventory

// FileRecord describes one scanned file. It is created once during
// classification and never mutated afterwards.
type FileRecord struct {
	// RelativeDir is the POSIX-style path of the containing directory
	// relative to the scan root ("." for root-level files).
	RelativeDir string `json:"relative_dir"`

	// Name is the filename including its extension.
	Name string `json:"name"`

	// Extension is the lowercased suffix including the leading dot,
	// or empty when the filename has no extension.
	Extension string `json:"extension,omitempty"`

	// Category is the coarse file-purpose bucket (code, config,
	// documentation, script, infrastructure, data, asset), or empty
	// when no rule matched.
	Category string `json:"category,omitempty"`

	// Language is the programming-language tag derived from the
	// extension (e.g. "python"), or empty.
	Language string `json:"language,omitempty"`

	// Technologies holds detected technology tags. No detector
	// populates it in this version; it is always present and empty.
	Technologies []string `json:"technologies"`

	// DataType is the structured-data kind (csv, jsonl, xml, ...) for
	// files with a recognized data extension, or empty.
	DataType string `json:"data_type,omitempty"`

	// DependencyKind identifies the package-manager manifest this file
	// represents (e.g. "python-requirements"). Set only on an exact,
	// case-sensitive filename match.
	DependencyKind string `json:"dependency_kind,omitempty"`

	// SizeBytes is the file size at scan time.
	SizeBytes int64 `json:"size_bytes"`

	// IsBinary reports whether the extension is in the binary set.
	IsBinary bool `json:"is_binary"`
}

// Path returns the record's root-relative path, uniquely identifying it
// within one scan.
func (r *FileRecord) Path() string {
	if r.RelativeDir == "." {
		return r.Name
	}
	return r.RelativeDir + "/" + r.Name
}

// Summary aggregates one scan's file records into per-dimension
// histograms and totals. It is built incrementally by the orchestrator
// and must not be shared across scans.
type Summary struct {
	FilesByLanguage        map[string]int `json:"files_by_language"`
	FilesByCategory        map[string]int `json:"files_by_category"`
	FilesByExtension       map[string]int `json:"files_by_extension"`
	FilesByDependency      map[string]int `json:"files_by_dependency"`
	FilesByDataType        map[string]int `json:"files_by_data_type"`
	BinaryFilesByExtension map[string]int `json:"binary_files_by_extension"`

	FilesWithExtension    int `json:"files_with_extension"`
	FilesWithoutExtension int `json:"files_without_extension"`
	TotalFiles            int `json:"total_files"`
	ScannedFiles          int `json:"scanned_files"`
	SkippedFiles          int `json:"skipped_files"`
}

// NewSummary returns an empty summary with all histograms allocated.
func NewSummary() *Summary {
	return &Summary{
		FilesByLanguage:        map[string]int{},
		FilesByCategory:        map[string]int{},
		FilesByExtension:       map[string]int{},
		FilesByDependency:      map[string]int{},
		FilesByDataType:        map[string]int{},
		BinaryFilesByExtension: map[string]int{},
	}
}

// Result is the outcome of one scan.
type Result struct {
	// Root is the absolute path of the scanned directory.
	Root string `json:"root"`

	// Records lists one FileRecord per scanned file. Empty in
	// summary-only mode.
	Records []FileRecord `json:"records,omitempty"`

	// Summary holds the aggregated histograms and totals.
	Summary *Summary `json:"summary"`

	// Incomplete is true when the scan was cancelled before the walk
	// finished; Records and Summary then cover only the files observed
	// up to that point.
	Incomplete bool `json:"incomplete,omitempty"`
}
