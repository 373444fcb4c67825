// Package security validates paths before any destructive operation.
// Every deletion goes through PathSanitizer exactly once, immediately
// before the filesystem mutation; results are never cached across calls.
package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Reason categorizes why a path failed validation
type Reason int

const (
	ReasonPathTraversal Reason = iota
	ReasonBlacklisted
	ReasonDoesNotExist
	ReasonTooRecent
	ReasonNotSafeToDelete
)

// String returns a human-readable validation failure reason
func (r Reason) String() string {
	switch r {
	case ReasonPathTraversal:
		return "path traversal detected"
	case ReasonBlacklisted:
		return "path is blacklisted"
	case ReasonDoesNotExist:
		return "path does not exist"
	case ReasonTooRecent:
		return "file too recent"
	case ReasonNotSafeToDelete:
		return "not safe to delete"
	default:
		return "validation failed"
	}
}

// ValidationError reports why a specific path must not be deleted. This
// error class is always fatal for the path in question and must be
// surfaced to the user, never swallowed.
type ValidationError struct {
	Path    string
	Reason  Reason
	AgeDays int64 // set for ReasonTooRecent
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Reason == ReasonTooRecent {
		return fmt.Sprintf("%s (%d days old): %s", e.Reason, e.AgeDays, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

// DefaultMinAgeDays is the default age protection threshold.
const DefaultMinAgeDays = 7

// PathSanitizer canonicalizes and validates paths before deletion. The
// blacklist is injected at construction so tests can supply a restricted
// table.
type PathSanitizer struct {
	minAgeDays           int64
	enforceAgeProtection bool
	blacklist            Blacklist
}

// NewPathSanitizer creates a sanitizer with age protection enabled at the
// default 7-day threshold.
func NewPathSanitizer(blacklist Blacklist) *PathSanitizer {
	return &PathSanitizer{
		minAgeDays:           DefaultMinAgeDays,
		enforceAgeProtection: true,
		blacklist:            blacklist,
	}
}

// WithMinAge sets the minimum age in days before a file may be deleted.
func (s *PathSanitizer) WithMinAge(days int64) *PathSanitizer {
	s.minAgeDays = days
	return s
}

// WithoutAgeProtection disables the age check (user override).
func (s *PathSanitizer) WithoutAgeProtection() *PathSanitizer {
	s.enforceAgeProtection = false
	return s
}

// SanitizePath validates a path for deletion and returns its canonical
// form. The pipeline is strict: home expansion, canonicalization,
// traversal check, blacklist check, then age protection. Any failing step
// aborts validation.
func (s *PathSanitizer) SanitizePath(path string) (string, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return "", err
	}

	canonical, err := s.canonicalize(path, expanded)
	if err != nil {
		return "", err
	}

	if err := checkPathTraversal(canonical); err != nil {
		return "", err
	}

	if err := s.checkBlacklist(canonical); err != nil {
		return "", err
	}

	if s.enforceAgeProtection {
		if err := s.checkAgeProtection(canonical); err != nil {
			return "", err
		}
	}

	return canonical, nil
}

// SanitizePaths validates multiple paths, failing on the first rejection.
func (s *PathSanitizer) SanitizePaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		canonical, err := s.SanitizePath(p)
		if err != nil {
			return nil, err
		}
		out = append(out, canonical)
	}
	return out, nil
}

// IsSafeToDelete reports whether a path would pass validation, discarding
// the specific failure reason.
func (s *PathSanitizer) IsSafeToDelete(path string) bool {
	_, err := s.SanitizePath(path)
	return err == nil
}

// canonicalize resolves symlinks and relative segments. A path that does
// not exist yet is accepted as a best-effort candidate when its parent
// exists; otherwise validation fails.
func (s *PathSanitizer) canonicalize(original, expanded string) (string, error) {
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", &ValidationError{Path: original, Reason: ReasonDoesNotExist}
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return canonical, nil
	}

	parent := filepath.Dir(abs)
	if _, statErr := os.Stat(parent); statErr == nil {
		return filepath.Clean(abs), nil
	}

	return "", &ValidationError{Path: original, Reason: ReasonDoesNotExist}
}

// checkPathTraversal rejects paths that still contain parent-directory
// segments. Canonicalization should already have removed these; the check
// guards against platform quirks.
func checkPathTraversal(path string) error {
	if strings.Contains(path, "/../") || strings.HasSuffix(path, "/..") || path == ".." {
		return &ValidationError{Path: path, Reason: ReasonPathTraversal}
	}
	return nil
}

// checkBlacklist rejects the path if it equals, or is nested under, any
// protected entry.
func (s *PathSanitizer) checkBlacklist(path string) error {
	for _, entry := range s.blacklist.Entries() {
		expanded, err := expandHome(entry)
		if err != nil {
			continue
		}
		expanded = filepath.Clean(expanded)

		if path == expanded || strings.HasPrefix(path, expanded+string(filepath.Separator)) {
			return &ValidationError{Path: path, Reason: ReasonBlacklisted}
		}
	}
	return nil
}

// checkAgeProtection rejects paths modified more recently than the
// configured minimum age. Paths that no longer exist skip the check.
func (s *PathSanitizer) checkAgeProtection(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	ageDays := int64(time.Since(info.ModTime()).Seconds()) / 86400
	if ageDays < s.minAgeDays {
		return &ValidationError{Path: path, Reason: ReasonTooRecent, AgeDays: ageDays}
	}

	return nil
}

// expandHome replaces a leading "~" with the resolved home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
