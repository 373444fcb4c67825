package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TreeMaxDepth is how many levels a tree scan fully recurses before
// switching to the one-level size approximation.
const TreeMaxDepth = 3

// TreeScanner builds a size-annotated tree of a directory. Directories at
// the depth cap get an approximate size computed from their immediate
// children only; this is a deliberate scan-time/accuracy trade-off that
// bounds cost on very deep trees.
type TreeScanner struct {
	maxDepth int
}

// NewTreeScanner creates a tree scanner with the standard depth cap.
func NewTreeScanner() *TreeScanner {
	return &TreeScanner{maxDepth: TreeMaxDepth}
}

// Scan builds the tree rooted at rootPath. An unreadable or missing root
// is the only fatal condition.
func (s *TreeScanner) Scan(rootPath string) (*TreeNode, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return newTreeNode(rootPath, info.Size(), true), nil
	}

	return s.scanDirectory(rootPath, 0), nil
}

func (s *TreeScanner) scanDirectory(path string, depth int) *TreeNode {
	node := newTreeNode(path, 0, false)

	entries, err := os.ReadDir(path)
	if err != nil {
		return node
	}

	var totalSize int64
	for _, entry := range entries {
		// Hidden entries are excluded entirely.
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		childPath := filepath.Join(path, entry.Name())

		var child *TreeNode
		if entry.IsDir() {
			if depth < s.maxDepth {
				child = s.scanDirectory(childPath, depth+1)
			} else {
				// At the cap: approximate from immediate children
				// instead of recursing.
				child = newTreeNode(childPath, quickDirSize(childPath), false)
			}
		} else {
			info, err := entry.Info()
			if err != nil {
				continue
			}
			child = newTreeNode(childPath, info.Size(), true)
		}

		totalSize += child.Size
		node.Children = append(node.Children, child)
	}

	sort.SliceStable(node.Children, func(i, j int) bool {
		return node.Children[i].Size > node.Children[j].Size
	})
	node.Size = totalSize

	return node
}

// quickDirSize sums the sizes of a directory's immediate children without
// recursing.
func quickDirSize(path string) int64 {
	var total int64
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total
}

func newTreeNode(path string, size int64, isFile bool) *TreeNode {
	return &TreeNode{
		Path:   path,
		Name:   filepath.Base(path),
		Size:   size,
		IsFile: isFile,
	}
}
