package scanner

import (
	"testing"
	"time"

	"github.com/fenilsonani/disksweep/internal/testutil"
	"github.com/fenilsonani/disksweep/pkg/utils"
)

func TestLargeFileScannerSortsBySizeDescending(t *testing.T) {
	f := testutil.NewFixture(t)

	f.CreateFileOfSize("one.bin", 1*utils.MB)
	f.CreateFileOfSize("three.bin", 3*utils.MB)
	f.CreateFileOfSize("five.bin", 5*utils.MB)

	items, err := NewLargeFileScanner().WithMinSize(500 * utils.KB).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(items))
	}

	wantSizes := []int64{5 * utils.MB, 3 * utils.MB, 1 * utils.MB}
	for i, item := range items {
		if item.Size != wantSizes[i] {
			t.Errorf("items[%d].Size = %d, want %d", i, item.Size, wantSizes[i])
		}
	}
}

func TestLargeFileScannerAgeThresholdExcludesFreshFiles(t *testing.T) {
	f := testutil.NewFixture(t)

	f.CreateFileOfSize("fresh.bin", 1*utils.MB)

	items, err := NewLargeFileScanner().
		WithMinSize(500 * utils.KB).
		WithMinAgeDays(1).
		Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(items) != 0 {
		t.Errorf("expected fresh file to be excluded, got %d entries", len(items))
	}
}

func TestLargeFileScannerAgeThresholdKeepsOldFiles(t *testing.T) {
	f := testutil.NewFixture(t)

	f.CreateFileWithAge("old.bin", make([]byte, 1*utils.MB), 10*24*time.Hour)
	f.CreateFileOfSize("fresh.bin", 1*utils.MB)

	items, err := NewLargeFileScanner().
		WithMinSize(500 * utils.KB).
		WithMinAgeDays(7).
		Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected only the old file, got %d entries", len(items))
	}
	if items[0].AgeDays < 9 || items[0].AgeDays > 10 {
		t.Errorf("AgeDays = %d, want ~10", items[0].AgeDays)
	}
}

func TestLargeFileScannerSizeFilter(t *testing.T) {
	f := testutil.NewFixture(t)

	f.CreateFileOfSize("tiny.bin", 10*utils.KB)
	f.CreateFileOfSize("big.bin", 2*utils.MB)

	items, err := NewLargeFileScanner().WithMinSize(1 * utils.MB).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if items[0].Size != 2*utils.MB {
		t.Errorf("Size = %d, want %d", items[0].Size, 2*utils.MB)
	}
}

func TestLargeFileScannerMissingRoot(t *testing.T) {
	f := testutil.NewFixture(t)

	if _, err := NewLargeFileScanner().Scan(f.Path("nope")); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestGroupBySizeBand(t *testing.T) {
	items := []LargeFileEntry{
		{Path: "huge", Size: 2 * utils.GB},
		{Path: "very-large", Size: 700 * utils.MB},
		{Path: "large", Size: 150 * utils.MB},
		{Path: "medium", Size: 50 * utils.MB},
	}

	bands := GroupBySizeBand(items)

	tests := []struct {
		name string
		band []LargeFileEntry
		want string
	}{
		{"huge", bands.Huge, "huge"},
		{"very large", bands.VeryLarge, "very-large"},
		{"large", bands.Large, "large"},
		{"medium", bands.Medium, "medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.band) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(tt.band))
			}
			if tt.band[0].Path != tt.want {
				t.Errorf("got %s, want %s", tt.band[0].Path, tt.want)
			}
		})
	}

	if bands.TotalCount() != len(items) {
		t.Errorf("TotalCount = %d, want %d", bands.TotalCount(), len(items))
	}
	if bands.TotalSize() != TotalLargeFileSize(items) {
		t.Errorf("TotalSize = %d, want %d", bands.TotalSize(), TotalLargeFileSize(items))
	}
}

func TestGroupBySizeBandBoundaries(t *testing.T) {
	items := []LargeFileEntry{
		{Path: "exactly-1gb", Size: utils.GB},
		{Path: "exactly-500mb", Size: 500 * utils.MB},
		{Path: "exactly-100mb", Size: 100 * utils.MB},
	}

	bands := GroupBySizeBand(items)

	if len(bands.Huge) != 1 || bands.Huge[0].Path != "exactly-1gb" {
		t.Error("1 GB boundary should land in the top band")
	}
	if len(bands.VeryLarge) != 1 || bands.VeryLarge[0].Path != "exactly-500mb" {
		t.Error("500 MB boundary should land in the very-large band")
	}
	if len(bands.Large) != 1 || bands.Large[0].Path != "exactly-100mb" {
		t.Error("100 MB boundary should land in the large band")
	}
	if len(bands.Medium) != 0 {
		t.Errorf("medium band should be empty, got %d", len(bands.Medium))
	}
}
