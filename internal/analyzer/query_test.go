package analyzer

import (
	"errors"
	"testing"

	"github.com/xewelus/obsidian-fm/internal/frontmatter"
)

func intPtr(n int) *int {
	return &n
}

func buildStatusIndex(t *testing.T) *Analyzer {
	t.Helper()
	a := New()
	a.Ingest("one.md", present(map[string]frontmatter.Value{
		"status": frontmatter.String("draft"),
	}))
	a.Ingest("two.md", present(map[string]frontmatter.Value{
		"status": frontmatter.String("draft"),
	}))
	a.Ingest("three.md", present(nil))
	return a
}

func TestScenarioDraftStatuses(t *testing.T) {
	a := buildStatusIndex(t)

	if got := a.TotalFiles(); got != 3 {
		t.Fatalf("expected 3 total files, got %d", got)
	}
	if got := a.FilesWithFrontmatter(); got != 2 {
		t.Fatalf("expected 2 files with frontmatter, got %d", got)
	}

	counts, err := a.ValuesFor("status", nil)
	if err != nil {
		t.Fatalf("ValuesFor returned error: %v", err)
	}
	if len(counts) != 1 || counts[0].Value.String() != "draft" || counts[0].Count != 2 {
		t.Fatalf("expected [(draft, 2)], got %#v", counts)
	}

	files, err := a.FilesFor("status", "done", nil)
	if err != nil {
		t.Fatalf("FilesFor returned error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files for unobserved value, got %v", files)
	}
}

func TestValuesForOrderingAndLimit(t *testing.T) {
	a := New()
	for i, status := range []string{"draft", "draft", "done", "review", "done", "draft"} {
		a.Ingest(
			string(rune('a'+i))+".md",
			present(map[string]frontmatter.Value{"status": frontmatter.String(status)}),
		)
	}
	// "archived" ties with "review" at one occurrence; display order must
	// break the tie alphabetically.
	a.Ingest("g.md", present(map[string]frontmatter.Value{
		"status": frontmatter.String("archived"),
	}))

	counts, err := a.ValuesFor("status", nil)
	if err != nil {
		t.Fatalf("ValuesFor returned error: %v", err)
	}

	got := make([]string, 0, len(counts))
	for _, vc := range counts {
		got = append(got, vc.Value.String())
	}
	want := []string{"draft", "done", "archived", "review"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}

	limited, err := a.ValuesFor("status", intPtr(2))
	if err != nil {
		t.Fatalf("ValuesFor with limit returned error: %v", err)
	}
	if len(limited) != 2 || limited[0].Value.String() != "draft" {
		t.Fatalf("expected top two values, got %#v", limited)
	}
}

func TestQueriesRejectNonPositiveLimits(t *testing.T) {
	a := buildStatusIndex(t)

	for _, limit := range []int{0, -3} {
		if _, err := a.ValuesFor("status", intPtr(limit)); !errors.Is(err, ErrInvalidLimit) {
			t.Fatalf("ValuesFor(limit=%d): expected ErrInvalidLimit, got %v", limit, err)
		}
		if _, err := a.FilesFor("status", nil, intPtr(limit)); !errors.Is(err, ErrInvalidLimit) {
			t.Fatalf("FilesFor(limit=%d): expected ErrInvalidLimit, got %v", limit, err)
		}
		if _, err := a.ValuesWithFiles("status", intPtr(limit), nil); !errors.Is(err, ErrInvalidLimit) {
			t.Fatalf("ValuesWithFiles(limitValues=%d): expected ErrInvalidLimit, got %v", limit, err)
		}
		if _, err := a.ValuesWithFiles("status", nil, intPtr(limit)); !errors.Is(err, ErrInvalidLimit) {
			t.Fatalf("ValuesWithFiles(limitNotes=%d): expected ErrInvalidLimit, got %v", limit, err)
		}
	}
}

func TestUnknownAttributeYieldsEmptyResults(t *testing.T) {
	a := buildStatusIndex(t)

	counts, err := a.ValuesFor("missing", nil)
	if err != nil {
		t.Fatalf("ValuesFor returned error: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("expected empty distribution, got %#v", counts)
	}

	files, err := a.FilesFor("missing", nil, nil)
	if err != nil {
		t.Fatalf("FilesFor returned error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %v", files)
	}
}

func TestFilesForWithoutValueDeduplicatesAcrossValues(t *testing.T) {
	a := New()
	a.Ingest("note.md", present(map[string]frontmatter.Value{
		"tags": frontmatter.Sequence([]frontmatter.Value{
			frontmatter.String("x"),
			frontmatter.String("y"),
		}),
	}))

	byValue, err := a.FilesFor("tags", "x", nil)
	if err != nil {
		t.Fatalf("FilesFor returned error: %v", err)
	}
	if len(byValue) != 1 || byValue[0] != "note.md" {
		t.Fatalf("expected [note.md], got %v", byValue)
	}

	all, err := a.FilesFor("tags", nil, nil)
	if err != nil {
		t.Fatalf("FilesFor returned error: %v", err)
	}
	if len(all) != 1 || all[0] != "note.md" {
		t.Fatalf("expected the file exactly once across values, got %v", all)
	}
}

func TestFilesForPreservesIngestionOrderAndTruncates(t *testing.T) {
	a := New()
	for _, path := range []string{"first.md", "second.md", "third.md"} {
		a.Ingest(path, present(map[string]frontmatter.Value{
			"status": frontmatter.String("draft"),
		}))
	}

	files, err := a.FilesFor("status", "draft", intPtr(2))
	if err != nil {
		t.Fatalf("FilesFor returned error: %v", err)
	}
	if len(files) != 2 || files[0] != "first.md" || files[1] != "second.md" {
		t.Fatalf("expected first two ingested files, got %v", files)
	}
}

func TestValuesWithFilesKeepsTrueCountWhenTruncated(t *testing.T) {
	a := New()
	for _, path := range []string{"a.md", "b.md", "c.md"} {
		a.Ingest(path, present(map[string]frontmatter.Value{
			"status": frontmatter.String("draft"),
		}))
	}
	a.Ingest("d.md", present(map[string]frontmatter.Value{
		"status": frontmatter.String("done"),
	}))

	entries, err := a.ValuesWithFiles("status", intPtr(1), intPtr(2))
	if err != nil {
		t.Fatalf("ValuesWithFiles returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single limited value, got %#v", entries)
	}

	entry := entries[0]
	if entry.Value.String() != "draft" {
		t.Fatalf("expected top value draft, got %q", entry.Value.String())
	}
	if entry.Count != 3 {
		t.Fatalf("expected true count 3 despite truncation, got %d", entry.Count)
	}
	if len(entry.Files) != 2 || entry.Files[0] != "a.md" || entry.Files[1] != "b.md" {
		t.Fatalf("expected first two members, got %v", entry.Files)
	}
}

func TestChildCountUnionsParentAndRefs(t *testing.T) {
	a := New()
	a.Ingest("child.md", present(map[string]frontmatter.Value{
		"parent": frontmatter.String("[[Learn]]"),
	}))
	a.Ingest("linked.md", present(map[string]frontmatter.Value{
		"refs": frontmatter.Sequence([]frontmatter.Value{
			frontmatter.String("[[Learn]]"),
			frontmatter.String("[[Other]]"),
		}),
	}))
	// Points at the hub through both attributes; must count once.
	a.Ingest("both.md", present(map[string]frontmatter.Value{
		"parent": frontmatter.String("[[Learn]]"),
		"refs": frontmatter.Sequence([]frontmatter.Value{
			frontmatter.String("[[Learn]]"),
		}),
	}))
	a.Ingest("unrelated.md", present(map[string]frontmatter.Value{
		"parent": frontmatter.String("[[Work]]"),
	}))

	if got := a.ChildCount("[[Learn]]", "parent", "refs"); got != 3 {
		t.Fatalf("expected 3 children for hub, got %d", got)
	}
	if got := a.ChildCount("[[Nowhere]]", "parent", "refs"); got != 0 {
		t.Fatalf("expected 0 children for unknown hub, got %d", got)
	}
}
