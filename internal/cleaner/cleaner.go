// Package cleaner performs the destructive half of the workflow: batch
// deletion of candidates that pass the path-safety gate.
package cleaner

import (
	"errors"
	"os"

	"github.com/fenilsonani/disksweep/internal/scanner"
	"github.com/fenilsonani/disksweep/internal/security"
)

// Candidate is one item selected for deletion: a path and its size
// snapshot from the scan that produced it.
type Candidate struct {
	Path string
	Size int64
}

// Rejection records a candidate the safety gate refused. Rejections are
// surfaced to the caller; they are never attempted and never counted as
// deletion failures.
type Rejection struct {
	Path string
	Err  *security.ValidationError
}

// CleanResult summarizes a deletion batch
type CleanResult struct {
	Deleted    int
	Failed     int
	BytesFreed int64
	Rejected   []Rejection
	Errors     []*DeletionError
	DryRun     bool
}

// Cleaner deletes candidates one at a time, continuing past individual
// failures. Every path is validated by the sanitizer immediately before
// its removal is issued.
type Cleaner struct {
	sanitizer *security.PathSanitizer
	dryRun    bool
}

// New creates a Cleaner gated by the given sanitizer.
func New(sanitizer *security.PathSanitizer) *Cleaner {
	return &Cleaner{sanitizer: sanitizer}
}

// SetDryRun makes Clean simulate deletions without touching the
// filesystem.
func (c *Cleaner) SetDryRun(dryRun bool) {
	c.dryRun = dryRun
}

// Clean deletes the given candidates. Unsafe paths are filtered into
// Rejected before any removal is attempted; per-item removal failures are
// counted and the batch continues.
//
// There is an unavoidable window between validation and removal in which
// a path could be re-targeted by a symlink; the Lstat re-check below
// narrows it but cannot close it. Known limitation.
func (c *Cleaner) Clean(candidates []Candidate) *CleanResult {
	result := &CleanResult{DryRun: c.dryRun}

	for _, candidate := range candidates {
		canonical, err := c.sanitizer.SanitizePath(candidate.Path)
		if err != nil {
			var valErr *security.ValidationError
			if errors.As(err, &valErr) {
				result.Rejected = append(result.Rejected, Rejection{
					Path: candidate.Path,
					Err:  valErr,
				})
				continue
			}
			result.Failed++
			result.Errors = append(result.Errors, CategorizeError(candidate.Path, err))
			continue
		}

		if c.dryRun {
			result.Deleted++
			result.BytesFreed += candidate.Size
			continue
		}

		if err := c.remove(canonical); err != nil {
			if err.Reason == ErrorFileNotFound {
				// Raced with something else removing it; the space is
				// freed either way.
				result.Deleted++
				result.BytesFreed += candidate.Size
				continue
			}
			result.Failed++
			result.Errors = append(result.Errors, err)
			continue
		}

		result.Deleted++
		result.BytesFreed += candidate.Size
	}

	return result
}

// remove unlinks a file or recursively removes a directory.
func (c *Cleaner) remove(path string) *DeletionError {
	// Lstat, not Stat: a path that turned into a symlink since
	// validation must not be followed.
	info, err := os.Lstat(path)
	if err != nil {
		return CategorizeError(path, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return &DeletionError{
			Path:     path,
			Reason:   ErrorInvalidPath,
			Original: errors.New("path changed to symlink since validation"),
		}
	}

	var removeErr error
	if info.IsDir() {
		removeErr = os.RemoveAll(path)
	} else {
		removeErr = os.Remove(path)
	}
	if removeErr != nil {
		return CategorizeError(path, removeErr)
	}

	return nil
}

// FromScanItems collects the selected cleanup items as candidates.
func FromScanItems(items []scanner.ScanItem) []Candidate {
	var out []Candidate
	for _, item := range items {
		if item.Selected {
			out = append(out, Candidate{Path: item.Path, Size: item.Size})
		}
	}
	return out
}

// FromDuplicateGroups collects the selected duplicate files as candidates.
func FromDuplicateGroups(groups []scanner.DuplicateGroup) []Candidate {
	var out []Candidate
	for _, group := range groups {
		for _, file := range group.Files {
			if file.Selected {
				out = append(out, Candidate{Path: file.Path, Size: file.Size})
			}
		}
	}
	return out
}

// FromLargeFiles collects the selected large files as candidates.
func FromLargeFiles(items []scanner.LargeFileEntry) []Candidate {
	var out []Candidate
	for _, item := range items {
		if item.Selected {
			out = append(out, Candidate{Path: item.Path, Size: item.Size})
		}
	}
	return out
}
