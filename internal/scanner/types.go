package scanner

import (
	"time"

	"github.com/fenilsonani/disksweep/internal/platform"
	"github.com/fenilsonani/disksweep/pkg/utils"
)

// ScanItem is a cleanup candidate at directory granularity: a directory
// and the total size of the files beneath it at scan time. The size is a
// snapshot and goes stale the moment the filesystem changes.
type ScanItem struct {
	Path     string
	Size     int64
	Category platform.Category
	Modified time.Time
	Selected bool
}

// TreeNode is one node of a size-annotated directory tree. An interior
// node's size is the sum of its direct children; a directory at the depth
// cap is approximated from its immediate children only.
type TreeNode struct {
	Path     string
	Name     string
	Size     int64
	Children []*TreeNode
	IsFile   bool
}

// PercentageOf returns the node's share of a total size.
func (n *TreeNode) PercentageOf(total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(n.Size) / float64(total) * 100
}

// DuplicateGroup is a set of files sharing identical byte size and
// content hash. Files are ordered oldest-to-newest; every copy but one
// counts as waste.
type DuplicateGroup struct {
	Hash       string
	Files      []DuplicateFile
	TotalSize  int64
	WastedSize int64
}

// DuplicateFile is one member of a duplicate group
type DuplicateFile struct {
	Path     string
	Size     int64
	Modified time.Time
	Selected bool
}

// LargeFileEntry is a file matching the size/age thresholds
type LargeFileEntry struct {
	Path     string
	Size     int64
	Modified time.Time
	Accessed time.Time
	AgeDays  int64
	Selected bool
}

// SizeBands partitions large files by size for presentation. Every input
// entry lands in exactly one band.
type SizeBands struct {
	Huge      []LargeFileEntry // > 1 GB
	VeryLarge []LargeFileEntry // 500 MB - 1 GB
	Large     []LargeFileEntry // 100 MB - 500 MB
	Medium    []LargeFileEntry // < 100 MB
}

// TotalCount returns the number of entries across all bands.
func (b *SizeBands) TotalCount() int {
	return len(b.Huge) + len(b.VeryLarge) + len(b.Large) + len(b.Medium)
}

// TotalSize returns the combined size of all bands.
func (b *SizeBands) TotalSize() int64 {
	return TotalLargeFileSize(b.Huge) + TotalLargeFileSize(b.VeryLarge) +
		TotalLargeFileSize(b.Large) + TotalLargeFileSize(b.Medium)
}

// GroupBySizeBand partitions entries into size bands. Pure function over
// an already-produced list; safe to call repeatedly.
func GroupBySizeBand(items []LargeFileEntry) *SizeBands {
	bands := &SizeBands{}
	for _, item := range items {
		switch {
		case item.Size >= utils.GB:
			bands.Huge = append(bands.Huge, item)
		case item.Size >= 500*utils.MB:
			bands.VeryLarge = append(bands.VeryLarge, item)
		case item.Size >= 100*utils.MB:
			bands.Large = append(bands.Large, item)
		default:
			bands.Medium = append(bands.Medium, item)
		}
	}
	return bands
}

// TotalItemSize sums the sizes of a set of scan items.
func TotalItemSize(items []ScanItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Size
	}
	return total
}

// TotalWastedSize sums the reclaimable bytes across duplicate groups.
func TotalWastedSize(groups []DuplicateGroup) int64 {
	var total int64
	for _, g := range groups {
		total += g.WastedSize
	}
	return total
}

// TotalLargeFileSize sums the sizes of large file entries.
func TotalLargeFileSize(items []LargeFileEntry) int64 {
	var total int64
	for _, item := range items {
		total += item.Size
	}
	return total
}
