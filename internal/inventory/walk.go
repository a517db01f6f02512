package inventory

import (
	"io/fs"
	"path/filepath"
)

// walkFiles performs a depth-first traversal under root and calls fn for
// every regular file. Directories whose base name is denylisted are
// pruned before descent, and directories that cannot be listed are
// skipped silently. fn's error aborts the walk and is returned as-is.
//
// The same path is never visited twice: the traversal covers each
// directory entry exactly once and never restarts.
func walkFiles(root string, tables *Tables, fn func(path string, d fs.DirEntry) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable directory or a racing delete. Drop the entry
			// without touching file counters.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && tables.ShouldSkipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		return fn(path, d)
	})
}
