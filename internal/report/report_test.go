package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	got := DefaultFilename("/home/user/my-repo", now)
	want := "my-repo_20260314_092653.summary.json"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDefaultFilename_SanitizesName(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	got := DefaultFilename("/tmp/we ird*name", now)
	if strings.ContainsAny(got, " *") {
		t.Errorf("filename not sanitized: %s", got)
	}
	if !strings.HasPrefix(got, "weirdname_") {
		t.Errorf("unexpected prefix: %s", got)
	}
}

func TestWrite_ProducesValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	payload := map[string]int{"total_files": 3}
	if err := Write(path, payload); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]int
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["total_files"] != 3 {
		t.Errorf("round-trip mismatch: %v", got)
	}
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Write(filepath.Join(dir, "out.json"), map[string]int{}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only out.json, got %v", names)
	}
}

func TestWrite_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := Write(path, map[string]int{"v": 1}); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, map[string]int{"v": 2}); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]int
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got["v"] != 2 {
		t.Errorf("expected overwritten value 2, got %d", got["v"])
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
}
