package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fenilsonani/disksweep/internal/platform"
	"github.com/fenilsonani/disksweep/pkg/utils"
)

const (
	// cleanupMaxDepth bounds how deep each category root is walked.
	cleanupMaxDepth = 5
	// cleanupMinDirSize is the floor below which a directory is noise.
	cleanupMinDirSize = 100 * utils.KB
)

// CleanupScanner resolves the per-OS category tables and rolls file sizes
// up to directory granularity: the output unit is "directory and its
// total size", not individual files.
type CleanupScanner struct {
	info       *platform.Info
	maxDepth   int
	minDirSize int64
}

// NewCleanupScanner creates a scanner over the given platform tables.
func NewCleanupScanner(info *platform.Info) *CleanupScanner {
	return &CleanupScanner{
		info:       info,
		maxDepth:   cleanupMaxDepth,
		minDirSize: cleanupMinDirSize,
	}
}

// WithMinDirSize sets the directory size floor below which results are
// dropped as noise.
func (s *CleanupScanner) WithMinDirSize(minDirSize int64) *CleanupScanner {
	s.minDirSize = minDirSize
	return s
}

// ScanCategory scans every existing root of one category. A category with
// zero readable roots contributes zero items, never an error.
func (s *CleanupScanner) ScanCategory(category platform.Category) ([]ScanItem, error) {
	var items []ScanItem
	for _, root := range s.info.CategoryRoots[category] {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		items = append(items, s.scanPath(root, category)...)
	}
	return items, nil
}

// ScanAll scans every category. If nothing at all is found, it falls back
// to a broader scan of common user directories tagged as user-cache, so
// the tool is never silently empty on unusual systems.
func (s *CleanupScanner) ScanAll() ([]ScanItem, error) {
	var all []ScanItem
	for _, category := range platform.AllCategories() {
		items, err := s.ScanCategory(category)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}

	if len(all) == 0 {
		for _, dir := range s.info.FallbackDirs {
			if _, err := os.Stat(dir); err != nil {
				continue
			}
			all = append(all, s.scanPath(dir, platform.CategoryUserCache)...)
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Size > all[j].Size
	})

	return all, nil
}

// scanPath walks one root and accumulates file sizes grouped by immediate
// parent directory. Unreadable entries are skipped.
func (s *CleanupScanner) scanPath(root string, category platform.Category) []ScanItem {
	dirSizes := make(map[string]int64)

	_ = walkFiles(root, s.maxDepth, func(path string, d fs.DirEntry) {
		info, err := d.Info()
		if err != nil {
			return
		}
		dirSizes[filepath.Dir(path)] += info.Size()
	})

	items := make([]ScanItem, 0, len(dirSizes))
	for dir, size := range dirSizes {
		if size <= s.minDirSize {
			continue
		}
		info, err := os.Stat(dir)
		if err != nil {
			continue
		}
		items = append(items, ScanItem{
			Path:     dir,
			Size:     size,
			Category: category,
			Modified: info.ModTime(),
		})
	}

	return items
}
