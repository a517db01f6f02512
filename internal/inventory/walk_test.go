package inventory

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func collectPaths(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := walkFiles(root, DefaultTables(), func(path string, d fs.DirEntry) error {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			t.Fatal(err)
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return paths
}

func TestWalkFiles_PrunesDenylistedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "main.go"), "package main\n")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref\n")
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "index.js"), ";\n")
	writeFile(t, filepath.Join(root, "src", "__pycache__", "m.pyc"), "\x00")

	paths := collectPaths(t, root)

	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d: %v", len(paths), paths)
	}
	if paths[0] != "src/main.go" {
		t.Errorf("expected src/main.go, got %s", paths[0])
	}
}

func TestWalkFiles_DenylistedRootStillWalked(t *testing.T) {
	// Pruning applies to descendants, not to the root itself, even when
	// the root's own base name is denylisted.
	parent := t.TempDir()
	root := filepath.Join(parent, "build")
	writeFile(t, filepath.Join(root, "artifact.txt"), "x")

	paths := collectPaths(t, root)
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d: %v", len(paths), paths)
	}
}

func TestWalkFiles_NoDuplicatePaths(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{"a.txt", "b/a.txt", "b/c/a.txt", "d.md"} {
		writeFile(t, filepath.Join(root, p), "x")
	}

	seen := map[string]int{}
	for _, p := range collectPaths(t, root) {
		seen[p]++
	}
	for p, n := range seen {
		if n != 1 {
			t.Errorf("path %s yielded %d times", p, n)
		}
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct paths, got %d", len(seen))
	}
}

func TestWalkFiles_UnreadableDirSkippedSilently(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are ignored when running as root")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ok.txt"), "x")
	locked := filepath.Join(root, "locked")
	writeFile(t, filepath.Join(locked, "hidden.txt"), "x")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	paths := collectPaths(t, root)
	if len(paths) != 1 || paths[0] != "ok.txt" {
		t.Errorf("expected only ok.txt, got %v", paths)
	}
}
