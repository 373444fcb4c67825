// Package reporter renders scan and cleanup results for the terminal.
package reporter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/fenilsonani/disksweep/internal/cleaner"
	"github.com/fenilsonani/disksweep/internal/scanner"
	"github.com/fenilsonani/disksweep/internal/sysinfo"
	"github.com/fenilsonani/disksweep/pkg/utils"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"})
	sizeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"})
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"})
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"})
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"})
)

// Reporter writes human-readable reports
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Header prints a one-line disk/memory summary.
func (r *Reporter) Header(stats *sysinfo.Stats) {
	if stats == nil {
		return
	}
	fmt.Fprintf(r.w, "%s %s free of %s (%.0f%% used)\n\n",
		titleStyle.Render("Disk:"),
		utils.FormatBytes(int64(stats.DiskFree)),
		utils.FormatBytes(int64(stats.DiskTotal)),
		stats.DiskPercentage())
}

// ScanItems prints cleanup candidates grouped by category.
func (r *Reporter) ScanItems(items []scanner.ScanItem) {
	if len(items) == 0 {
		fmt.Fprintln(r.w, dimStyle.Render("Nothing to clean up."))
		return
	}

	byCategory := make(map[string][]scanner.ScanItem)
	var order []string
	for _, item := range items {
		name := item.Category.Name()
		if _, seen := byCategory[name]; !seen {
			order = append(order, name)
		}
		byCategory[name] = append(byCategory[name], item)
	}

	for _, name := range order {
		group := byCategory[name]
		fmt.Fprintf(r.w, "%s (%s)\n",
			titleStyle.Render(name),
			sizeStyle.Render(utils.FormatBytes(scanner.TotalItemSize(group))))
		for _, item := range group {
			fmt.Fprintf(r.w, "  %10s  %s\n",
				utils.FormatBytes(item.Size), pathStyle.Render(item.Path))
		}
	}

	fmt.Fprintf(r.w, "\n%s %s in %d directories\n",
		titleStyle.Render("Total:"),
		sizeStyle.Render(utils.FormatBytes(scanner.TotalItemSize(items))),
		len(items))
}

// Tree prints a size-annotated directory tree.
func (r *Reporter) Tree(root *scanner.TreeNode) {
	fmt.Fprintf(r.w, "%s  %s\n",
		titleStyle.Render(root.Path),
		sizeStyle.Render(utils.FormatBytes(root.Size)))
	r.printChildren(root, "  ")
}

func (r *Reporter) printChildren(node *scanner.TreeNode, indent string) {
	for _, child := range node.Children {
		marker := "/"
		if child.IsFile {
			marker = ""
		}
		fmt.Fprintf(r.w, "%s%10s  %s%s %s\n",
			indent,
			utils.FormatBytes(child.Size),
			pathStyle.Render(child.Name), marker,
			dimStyle.Render(fmt.Sprintf("(%.1f%%)", child.PercentageOf(node.Size))))
		r.printChildren(child, indent+"  ")
	}
}

// Duplicates prints duplicate groups, most wasteful first.
func (r *Reporter) Duplicates(groups []scanner.DuplicateGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(r.w, dimStyle.Render("No duplicates found."))
		return
	}

	for _, group := range groups {
		fmt.Fprintf(r.w, "%s  %s wasted  %s\n",
			titleStyle.Render(fmt.Sprintf("%d copies", len(group.Files))),
			sizeStyle.Render(utils.FormatBytes(group.WastedSize)),
			dimStyle.Render(shortHash(group.Hash)))
		for i, file := range group.Files {
			keep := ""
			if i == 0 {
				keep = dimStyle.Render("  (oldest, keep)")
			}
			fmt.Fprintf(r.w, "  %s%s\n", pathStyle.Render(file.Path), keep)
		}
	}

	fmt.Fprintf(r.w, "\n%s %s reclaimable across %d groups\n",
		titleStyle.Render("Total:"),
		sizeStyle.Render(utils.FormatBytes(scanner.TotalWastedSize(groups))),
		len(groups))
}

// LargeFiles prints entries partitioned into size bands.
func (r *Reporter) LargeFiles(items []scanner.LargeFileEntry) {
	if len(items) == 0 {
		fmt.Fprintln(r.w, dimStyle.Render("No files matched the thresholds."))
		return
	}

	bands := scanner.GroupBySizeBand(items)
	r.printBand("Over 1 GB", bands.Huge)
	r.printBand("500 MB - 1 GB", bands.VeryLarge)
	r.printBand("100 MB - 500 MB", bands.Large)
	r.printBand("Under 100 MB", bands.Medium)

	fmt.Fprintf(r.w, "\n%s %s in %d files\n",
		titleStyle.Render("Total:"),
		sizeStyle.Render(utils.FormatBytes(scanner.TotalLargeFileSize(items))),
		len(items))
}

func (r *Reporter) printBand(label string, items []scanner.LargeFileEntry) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(r.w, titleStyle.Render(label))
	for _, item := range items {
		fmt.Fprintf(r.w, "  %10s  %s %s\n",
			utils.FormatBytes(item.Size),
			pathStyle.Render(item.Path),
			dimStyle.Render(fmt.Sprintf("(%dd old)", item.AgeDays)))
	}
}

// CleanSummary prints the outcome of a deletion batch.
func (r *Reporter) CleanSummary(result *cleaner.CleanResult) {
	verb := "Deleted"
	if result.DryRun {
		verb = "Would delete"
	}

	fmt.Fprintf(r.w, "%s %d items, %s freed\n",
		titleStyle.Render(verb),
		result.Deleted,
		sizeStyle.Render(utils.FormatBytes(result.BytesFreed)))

	if result.Failed > 0 {
		fmt.Fprintln(r.w, warnStyle.Render(fmt.Sprintf("%d items failed:", result.Failed)))
		grouped := cleaner.GroupErrors(result.Errors)
		for _, reason := range []cleaner.ErrorReason{
			cleaner.ErrorPermissionDenied,
			cleaner.ErrorFileInUse,
			cleaner.ErrorFileNotFound,
			cleaner.ErrorInvalidPath,
			cleaner.ErrorUnknown,
		} {
			if errs := grouped[reason]; len(errs) > 0 {
				fmt.Fprintf(r.w, "  %s: %d\n", reason, len(errs))
			}
		}
	}

	for _, rejection := range result.Rejected {
		fmt.Fprintln(r.w, warnStyle.Render("refused: "+rejection.Err.Error()))
	}
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}

// Plain strips styling for non-TTY output.
func Plain() {
	for _, s := range []*lipgloss.Style{&titleStyle, &sizeStyle, &pathStyle, &dimStyle, &warnStyle} {
		*s = lipgloss.NewStyle()
	}
}
