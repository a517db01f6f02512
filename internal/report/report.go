// Package report serializes scan results to disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// timestampLayout matches the summary filename timestamp format.
const timestampLayout = "20060102_150405"

// DefaultFilename builds the summary filename for a repository root:
// "<repo>_<timestamp>.summary.json", with the repo name reduced to
// filename-safe characters.
func DefaultFilename(root string, now time.Time) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	name := sanitizeName(filepath.Base(abs))
	return fmt.Sprintf("%s_%s.summary.json", name, now.Format(timestampLayout))
}

// sanitizeName strips characters that are unsafe in filenames, falling
// back to "repo" when nothing survives.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-', r == '_', r == '.':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "repo"
	}
	return b.String()
}

// Write serializes v as indented JSON and moves it into place with a
// write-then-rename, so a concurrent reader never observes a partially
// written file.
func Write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return fmt.Errorf("creating temp report: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing report: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("placing report: %w", err)
	}
	return nil
}

// EnsureDir creates the output directory if needed. Failure here is
// fatal to the caller: no scan output can be persisted without it.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}
