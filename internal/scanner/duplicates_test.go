package scanner

import (
	"testing"
	"time"

	"github.com/fenilsonani/disksweep/internal/testutil"
)

func TestDuplicateScannerFindsExactCopies(t *testing.T) {
	f := testutil.NewFixture(t)

	content := []byte("test content for duplicate detection")
	f.CreateFile("docs/report.txt", content)
	f.CreateFile("backup/report-copy.txt", content)

	groups, err := NewDuplicateScanner().WithMinSize(1).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(groups) != 1 {
		t.Fatalf("expected 1 duplicate group, got %d", len(groups))
	}

	group := groups[0]
	if len(group.Files) != 2 {
		t.Errorf("expected 2 members, got %d", len(group.Files))
	}
	if group.WastedSize != int64(len(content)) {
		t.Errorf("WastedSize = %d, want %d", group.WastedSize, len(content))
	}
	if group.TotalSize != 2*int64(len(content)) {
		t.Errorf("TotalSize = %d, want %d", group.TotalSize, 2*len(content))
	}
	if group.Hash == "" {
		t.Error("group hash is empty")
	}
}

func TestDuplicateScannerIgnoresUniqueFiles(t *testing.T) {
	f := testutil.NewFixture(t)

	f.CreateFile("one.txt", []byte("only file with this size x"))
	f.CreateFile("two.txt", []byte("a different, longer unique content"))

	groups, err := NewDuplicateScanner().WithMinSize(1).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(groups) != 0 {
		t.Errorf("expected no groups for unique files, got %d", len(groups))
	}
}

func TestDuplicateScannerSameSizeDifferentContent(t *testing.T) {
	f := testutil.NewFixture(t)

	// Same byte count, different bytes: the size pre-filter admits them,
	// hashing must separate them.
	f.CreateFile("a.bin", []byte("AAAAAAAAAA"))
	f.CreateFile("b.bin", []byte("BBBBBBBBBB"))

	groups, err := NewDuplicateScanner().WithMinSize(1).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestDuplicateScannerMembersOldestFirst(t *testing.T) {
	f := testutil.NewFixture(t)

	content := []byte("shared content for ordering check")
	oldest := f.CreateFileWithAge("oldest.txt", content, 72*time.Hour)
	middle := f.CreateFileWithAge("middle.txt", content, 48*time.Hour)
	newest := f.CreateFileWithAge("newest.txt", content, 24*time.Hour)

	groups, err := NewDuplicateScanner().WithMinSize(1).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	want := []string{oldest, middle, newest}
	for i, file := range groups[0].Files {
		if file.Path != want[i] {
			t.Errorf("Files[%d] = %s, want %s", i, file.Path, want[i])
		}
	}
	if groups[0].WastedSize != 2*int64(len(content)) {
		t.Errorf("WastedSize = %d, want %d", groups[0].WastedSize, 2*len(content))
	}
}

func TestDuplicateScannerGroupsSortedByWaste(t *testing.T) {
	f := testutil.NewFixture(t)

	small := []byte("small duplicated payload")
	big := make([]byte, 4096)
	for i := range big {
		big[i] = byte(i)
	}

	f.CreateFile("s1.bin", small)
	f.CreateFile("s2.bin", small)
	f.CreateFile("b1.bin", big)
	f.CreateFile("b2.bin", big)
	f.CreateFile("b3.bin", big)

	groups, err := NewDuplicateScanner().WithMinSize(1).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	if groups[0].WastedSize < groups[1].WastedSize {
		t.Errorf("groups not sorted by wasted size: %d before %d",
			groups[0].WastedSize, groups[1].WastedSize)
	}
	if groups[0].WastedSize != 2*4096 {
		t.Errorf("largest group WastedSize = %d, want %d", groups[0].WastedSize, 2*4096)
	}
}

func TestDuplicateScannerMinSizeFilter(t *testing.T) {
	f := testutil.NewFixture(t)

	content := []byte("below the threshold")
	f.CreateFile("a.txt", content)
	f.CreateFile("b.txt", content)

	groups, err := NewDuplicateScanner().WithMinSize(1024).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(groups) != 0 {
		t.Errorf("expected files under min size to be skipped, got %d groups", len(groups))
	}
}

func TestDuplicateScannerMaxDepth(t *testing.T) {
	f := testutil.NewFixture(t)

	content := []byte("duplicate beyond the depth bound")
	f.CreateFile("top1.txt", content)
	f.CreateFile("deep/nested/further/top2.txt", content)

	groups, err := NewDuplicateScanner().WithMinSize(1).WithMaxDepth(1).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(groups) != 0 {
		t.Errorf("expected the nested copy to be out of reach, got %d groups", len(groups))
	}
}

func TestDuplicateScannerMissingRoot(t *testing.T) {
	f := testutil.NewFixture(t)

	if _, err := NewDuplicateScanner().Scan(f.Path("does-not-exist")); err == nil {
		t.Error("expected error for missing root")
	}
}
