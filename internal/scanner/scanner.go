// Package scanner turns a directory tree into typed collections of
// reclaimable-space candidates. Each scanner is a single, self-contained,
// read-only traversal: per-entry I/O errors are skipped, an unreadable or
// missing root is the only fatal condition, and nothing is retained
// between calls.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultScanRoot returns the user's home directory, or "/" when it
// cannot be determined, for callers that don't supply an explicit root.
func DefaultScanRoot() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "/"
	}
	return home
}

// walkDepth returns how many levels below root the given path sits.
// The root itself is depth 0.
func walkDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// walkFiles walks root, calling fn for every regular file. maxDepth <= 0
// means unbounded. Per-entry errors are skipped, never fatal.
func walkFiles(root string, maxDepth int, fn func(path string, d fs.DirEntry)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission denied or vanished entry; skip and continue.
			return nil
		}

		if d.IsDir() {
			if maxDepth > 0 && walkDepth(root, path) >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		fn(path, d)
		return nil
	})
}
