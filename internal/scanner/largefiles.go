package scanner

import (
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/fenilsonani/disksweep/pkg/utils"
)

// LargeFileScanner produces a flat list of files meeting size and age
// thresholds in a single pass, sorted largest first.
type LargeFileScanner struct {
	minSize    int64
	minAgeDays int64 // 0 = no age requirement
	maxDepth   int   // 0 = unbounded
}

// NewLargeFileScanner creates a scanner with a 100 MB minimum size and no
// age requirement.
func NewLargeFileScanner() *LargeFileScanner {
	return &LargeFileScanner{minSize: 100 * utils.MB}
}

// WithMinSize sets the minimum file size.
func (s *LargeFileScanner) WithMinSize(minSize int64) *LargeFileScanner {
	s.minSize = minSize
	return s
}

// WithMinAgeDays requires files to be at least this many days old.
func (s *LargeFileScanner) WithMinAgeDays(days int64) *LargeFileScanner {
	s.minAgeDays = days
	return s
}

// WithMaxDepth bounds the walk depth.
func (s *LargeFileScanner) WithMaxDepth(maxDepth int) *LargeFileScanner {
	s.maxDepth = maxDepth
	return s
}

// Scan returns every file under root that satisfies both thresholds,
// sorted by size descending.
func (s *LargeFileScanner) Scan(root string) ([]LargeFileEntry, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	now := time.Now()
	var cutoff time.Time
	if s.minAgeDays > 0 {
		cutoff = now.Add(-time.Duration(s.minAgeDays) * 24 * time.Hour)
	}

	var items []LargeFileEntry
	_ = walkFiles(root, s.maxDepth, func(path string, d fs.DirEntry) {
		info, err := d.Info()
		if err != nil {
			return
		}

		if info.Size() < s.minSize {
			return
		}

		modified := info.ModTime()
		if s.minAgeDays > 0 && modified.After(cutoff) {
			return // too new
		}

		ageDays := int64(now.Sub(modified).Seconds()) / 86400
		if ageDays < 0 {
			ageDays = 0
		}

		items = append(items, LargeFileEntry{
			Path:     path,
			Size:     info.Size(),
			Modified: modified,
			Accessed: fileAccessTime(info),
			AgeDays:  ageDays,
		})
	})

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Size > items[j].Size
	})

	return items, nil
}
