package scanner

import (
	"io/fs"
	"os"
	"sort"

	"github.com/fenilsonani/disksweep/pkg/utils"
)

// DuplicateScanner finds files with identical content in two phases:
// group candidates by exact byte size, then hash only the sizes that
// collide. Hashing is the expensive step (a full read of every byte); the
// size pre-filter is metadata-only and discards the overwhelming majority
// of candidates before any hashing happens.
type DuplicateScanner struct {
	minSize  int64
	maxDepth int // 0 = unbounded
}

// NewDuplicateScanner creates a scanner with a 100 KB minimum file size
// and no depth bound.
func NewDuplicateScanner() *DuplicateScanner {
	return &DuplicateScanner{minSize: 100 * utils.KB}
}

// WithMinSize sets the minimum file size considered.
func (s *DuplicateScanner) WithMinSize(minSize int64) *DuplicateScanner {
	s.minSize = minSize
	return s
}

// WithMaxDepth bounds the walk depth.
func (s *DuplicateScanner) WithMaxDepth(maxDepth int) *DuplicateScanner {
	s.maxDepth = maxDepth
	return s
}

// Scan walks the tree under root and returns duplicate groups sorted by
// wasted size descending, so the most recoverable space surfaces first.
func (s *DuplicateScanner) Scan(root string) ([]DuplicateGroup, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	// Phase 1: group by size. A file of a unique size cannot be a
	// duplicate of anything, so singleton groups never reach the hasher.
	sizeGroups := s.groupBySize(root)

	// Phase 2: hash within each colliding size group. A file that fails
	// to hash mid-read is excluded from its group.
	hashGroups := make(map[string][]DuplicateFile)
	for size, paths := range sizeGroups {
		if len(paths) < 2 {
			continue
		}

		for _, path := range paths {
			hash, err := utils.HashFile(path)
			if err != nil {
				continue
			}

			info, err := os.Stat(path)
			if err != nil {
				continue
			}

			hashGroups[hash] = append(hashGroups[hash], DuplicateFile{
				Path:     path,
				Size:     size,
				Modified: info.ModTime(),
			})
		}
	}

	// Same size does not guarantee same content: re-check cardinality
	// after hashing.
	groups := make([]DuplicateGroup, 0, len(hashGroups))
	for hash, files := range hashGroups {
		if len(files) < 2 {
			continue
		}

		sort.SliceStable(files, func(i, j int) bool {
			return files[i].Modified.Before(files[j].Modified)
		})

		totalSize := files[0].Size * int64(len(files))
		groups = append(groups, DuplicateGroup{
			Hash:       hash,
			Files:      files,
			TotalSize:  totalSize,
			WastedSize: totalSize - files[0].Size,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].WastedSize > groups[j].WastedSize
	})

	return groups, nil
}

// groupBySize maps exact byte size to the paths that have it.
func (s *DuplicateScanner) groupBySize(root string) map[int64][]string {
	sizeGroups := make(map[int64][]string)

	_ = walkFiles(root, s.maxDepth, func(path string, d fs.DirEntry) {
		info, err := d.Info()
		if err != nil {
			return
		}
		if info.Size() < s.minSize {
			return
		}
		sizeGroups[info.Size()] = append(sizeGroups[info.Size()], path)
	})

	return sizeGroups
}
