package inventory

// observe folds one classified record into the summary. Each dimension
// with a non-empty value increments exactly one bucket; empty values
// skip their histogram silently rather than creating an "unknown"
// bucket, so callers can derive unknown counts from ScannedFiles minus
// a histogram's total.
func (s *Summary) observe(rec *FileRecord) {
	s.TotalFiles++
	s.ScannedFiles++

	if rec.Extension != "" {
		s.FilesWithExtension++
		s.FilesByExtension[rec.Extension]++
	} else {
		s.FilesWithoutExtension++
	}
	if rec.Language != "" {
		s.FilesByLanguage[rec.Language]++
	}
	if rec.Category != "" {
		s.FilesByCategory[rec.Category]++
	}
	if rec.DependencyKind != "" {
		s.FilesByDependency[rec.DependencyKind]++
	}
	if rec.DataType != "" {
		s.FilesByDataType[rec.DataType]++
	}
	if rec.IsBinary {
		s.BinaryFilesByExtension[rec.Extension]++
	}
}

// observeSkip counts a path whose classification failed. Skipped paths
// contribute to no histogram.
func (s *Summary) observeSkip() {
	s.TotalFiles++
	s.SkippedFiles++
}
