package cleaner

import (
	"testing"
	"time"

	"github.com/fenilsonani/disksweep/internal/scanner"
	"github.com/fenilsonani/disksweep/internal/security"
	"github.com/fenilsonani/disksweep/internal/testutil"
)

func testSanitizer() *security.PathSanitizer {
	return security.NewPathSanitizer(security.NewBlacklist([]string{"/System"}))
}

func TestCleanDeletesBatch(t *testing.T) {
	f := testutil.NewFixture(t)

	fileA := f.CreateFileWithAge("a.dat", make([]byte, 100), 10*24*time.Hour)
	fileB := f.CreateFileWithAge("b.dat", make([]byte, 200), 10*24*time.Hour)

	c := New(testSanitizer())
	result := c.Clean([]Candidate{
		{Path: fileA, Size: 100},
		{Path: fileB, Size: 200},
	})

	if result.Deleted != 2 {
		t.Errorf("Deleted = %d, want 2", result.Deleted)
	}
	if result.Failed != 0 {
		t.Errorf("Failed = %d, want 0", result.Failed)
	}
	if result.BytesFreed != 300 {
		t.Errorf("BytesFreed = %d, want 300", result.BytesFreed)
	}
	f.AssertFileNotExists(fileA)
	f.AssertFileNotExists(fileB)
}

func TestCleanRemovesDirectoriesRecursively(t *testing.T) {
	f := testutil.NewFixture(t)

	dir := f.CreateDir("stale-cache")
	f.CreateFile("stale-cache/inner/deep.dat", []byte("x"))
	f.SetAge(dir, 10*24*time.Hour)

	c := New(testSanitizer())
	result := c.Clean([]Candidate{{Path: dir, Size: 1}})

	if result.Deleted != 1 {
		t.Fatalf("Deleted = %d, want 1 (errors: %v, rejected: %v)",
			result.Deleted, result.Errors, result.Rejected)
	}
	f.AssertFileNotExists(dir)
}

func TestCleanRejectionsAreNotFailures(t *testing.T) {
	f := testutil.NewFixture(t)

	old := f.CreateFileWithAge("old.dat", make([]byte, 100), 10*24*time.Hour)
	fresh := f.CreateFile("fresh.dat", make([]byte, 100))

	c := New(testSanitizer())
	result := c.Clean([]Candidate{
		{Path: old, Size: 100},
		{Path: fresh, Size: 100},
		{Path: "/System", Size: 0},
	})

	if result.Deleted != 1 {
		t.Errorf("Deleted = %d, want 1", result.Deleted)
	}
	if result.Failed != 0 {
		t.Errorf("rejections must not count as failures, Failed = %d", result.Failed)
	}
	if len(result.Rejected) != 2 {
		t.Fatalf("Rejected = %d, want 2", len(result.Rejected))
	}

	reasons := map[security.Reason]bool{}
	for _, rejection := range result.Rejected {
		reasons[rejection.Err.Reason] = true
	}
	if !reasons[security.ReasonTooRecent] || !reasons[security.ReasonBlacklisted] {
		t.Errorf("unexpected rejection reasons: %v", result.Rejected)
	}

	// The refused candidates are untouched.
	f.AssertFileExists(fresh)
}

func TestCleanContinuesPastRejections(t *testing.T) {
	f := testutil.NewFixture(t)

	after := f.CreateFileWithAge("after.dat", make([]byte, 50), 10*24*time.Hour)

	c := New(testSanitizer())
	result := c.Clean([]Candidate{
		{Path: "/System", Size: 0},
		{Path: after, Size: 50},
	})

	if result.Deleted != 1 {
		t.Errorf("batch should continue after a rejection, Deleted = %d", result.Deleted)
	}
	f.AssertFileNotExists(after)
}

func TestCleanDryRun(t *testing.T) {
	f := testutil.NewFixture(t)

	path := f.CreateFileWithAge("keep.dat", make([]byte, 100), 10*24*time.Hour)

	c := New(testSanitizer())
	c.SetDryRun(true)
	result := c.Clean([]Candidate{{Path: path, Size: 100}})

	if !result.DryRun {
		t.Error("result should be flagged as dry run")
	}
	if result.Deleted != 1 {
		t.Errorf("Deleted = %d, want 1", result.Deleted)
	}
	if result.BytesFreed != 100 {
		t.Errorf("BytesFreed = %d, want 100", result.BytesFreed)
	}
	f.AssertFileExists(path)
}

func TestCleanDryRunStillRejectsUnsafePaths(t *testing.T) {
	c := New(testSanitizer())
	c.SetDryRun(true)

	result := c.Clean([]Candidate{{Path: "/System", Size: 0}})

	if result.Deleted != 0 {
		t.Errorf("Deleted = %d, want 0", result.Deleted)
	}
	if len(result.Rejected) != 1 {
		t.Errorf("Rejected = %d, want 1", len(result.Rejected))
	}
}

func TestCleanVanishedFileCountsAsFreed(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateDir("exists")

	// The parent exists so validation passes, but the file itself is
	// already gone: the space is freed either way.
	c := New(testSanitizer())
	result := c.Clean([]Candidate{{Path: f.Path("exists/vanished.dat"), Size: 64}})

	if result.Deleted != 1 {
		t.Errorf("Deleted = %d, want 1 (errors: %v)", result.Deleted, result.Errors)
	}
	if result.Failed != 0 {
		t.Errorf("Failed = %d, want 0", result.Failed)
	}
	if result.BytesFreed != 64 {
		t.Errorf("BytesFreed = %d, want 64", result.BytesFreed)
	}
}

func TestFromScanItemsCollectsSelected(t *testing.T) {
	items := []scanner.ScanItem{
		{Path: "/a", Size: 10, Selected: true},
		{Path: "/b", Size: 20},
		{Path: "/c", Size: 30, Selected: true},
	}

	got := FromScanItems(items)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Path != "/a" || got[1].Path != "/c" {
		t.Errorf("unexpected candidates: %+v", got)
	}
}

func TestFromDuplicateGroupsCollectsSelected(t *testing.T) {
	groups := []scanner.DuplicateGroup{
		{
			Files: []scanner.DuplicateFile{
				{Path: "/keep", Size: 10},
				{Path: "/drop1", Size: 10, Selected: true},
				{Path: "/drop2", Size: 10, Selected: true},
			},
		},
	}

	got := FromDuplicateGroups(groups)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	for _, c := range got {
		if c.Path == "/keep" {
			t.Error("unselected file must not become a candidate")
		}
	}
}

func TestFromLargeFilesCollectsSelected(t *testing.T) {
	items := []scanner.LargeFileEntry{
		{Path: "/big", Size: 100, Selected: true},
		{Path: "/other", Size: 200},
	}

	got := FromLargeFiles(items)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Path != "/big" || got[0].Size != 100 {
		t.Errorf("unexpected candidate: %+v", got[0])
	}
}
