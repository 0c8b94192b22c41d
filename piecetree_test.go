package piecetree

import "testing"

func TestScenarioHelloInsertion(t *testing.T) {
	b := InitFromString("Initial text", NoEOL)
	off, err := b.OffsetAt(1, 1)
	if err != nil || off != 0 {
		t.Fatalf("OffsetAt(1,1) = %d, %v", off, err)
	}
	if err := b.Insert(off, "Hello, "); err != nil {
		t.Fatal(err)
	}
	if err := b.Append("World!"); err != nil {
		t.Fatal(err)
	}
	if got := b.Text(); got != "Hello, Initial textWorld!" {
		t.Fatalf("Text() = %q", got)
	}
	if b.Length() != 25 {
		t.Fatalf("Length() = %d, want 25", b.Length())
	}
	if b.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", b.LineCount())
	}
}

func TestScenarioMultiLineLineAccess(t *testing.T) {
	b := InitFromString("ab\ncd\r\nef\rgh", NoEOL)
	if b.LineCount() != 4 {
		t.Fatalf("LineCount() = %d, want 4", b.LineCount())
	}
	for i, want := range []string{"ab", "cd", "ef", "gh"} {
		got, err := b.LineContent(i + 1)
		if err != nil || got != want {
			t.Fatalf("LineContent(%d) = %q, %v; want %q", i+1, got, err, want)
		}
	}
	off, err := b.OffsetAt(3, 1)
	if err != nil || off != 7 {
		t.Fatalf("OffsetAt(3,1) = %d, %v; want 7", off, err)
	}
	pos, err := b.PositionAt(7)
	if err != nil || pos != (Position{Line: 3, Column: 1}) {
		t.Fatalf("PositionAt(7) = %v, %v; want (3,1)", pos, err)
	}
}

func TestScenarioDeleteSpanningPieces(t *testing.T) {
	b := InitFromString("abcdef", NoEOL)
	if err := b.Insert(3, "XY"); err != nil {
		t.Fatal(err)
	}
	if err := b.Delete(Range{Start: 2, End: 6}); err != nil {
		t.Fatal(err)
	}
	if got := b.Text(); got != "abef" {
		t.Fatalf("Text() = %q, want abef", got)
	}
	if b.Length() != 4 {
		t.Fatalf("Length() = %d, want 4", b.Length())
	}
}

func TestScenarioUndoRedoReplace(t *testing.T) {
	b := InitFromString("The quick brown fox", NoEOL)
	if err := b.Replace(Range{Start: 4, End: 9}, "slow"); err != nil {
		t.Fatal(err)
	}
	if got := b.Text(); got != "The slow brown fox" {
		t.Fatalf("Text() = %q", got)
	}
	if _, ok, err := b.Undo(); err != nil || !ok {
		t.Fatalf("Undo: ok=%v err=%v", ok, err)
	}
	if got := b.Text(); got != "The quick brown fox" {
		t.Fatalf("after Undo, Text() = %q", got)
	}
	if _, ok, err := b.Redo(); err != nil || !ok {
		t.Fatalf("Redo: ok=%v err=%v", ok, err)
	}
	if got := b.Text(); got != "The slow brown fox" {
		t.Fatalf("after Redo, Text() = %q", got)
	}
}

func TestScenarioEOLNormalization(t *testing.T) {
	b := New()
	b.SetEOL(LF)
	b.SetNormalizeEOL(true)
	if err := b.Append("a\r\nb\rc\nd"); err != nil {
		t.Fatal(err)
	}
	if got := b.Text(); got != "a\nb\nc\nd" {
		t.Fatalf("Text() = %q", got)
	}
	if b.LineCount() != 4 {
		t.Fatalf("LineCount() = %d, want 4", b.LineCount())
	}
	if got := b.TextWithEOL(CRLF); got != "a\r\nb\r\nc\r\nd" {
		t.Fatalf("TextWithEOL(CRLF) = %q", got)
	}
}

func TestScenarioFindAllCap(t *testing.T) {
	text := make([]byte, 2000)
	for i := range text {
		text[i] = 'x'
	}
	b := InitFromString(string(text), NoEOL)

	matches, err := b.FindAll("x", 0, SearchOptions{CaseSensitive: true}, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1000 {
		t.Fatalf("got %d matches, want 1000", len(matches))
	}
	for i, m := range matches {
		if m.Start != i {
			t.Fatalf("match %d starts at %d, want %d", i, m.Start, i)
		}
	}

	next, ok, err := b.FindNext("x", matches[999].End, SearchOptions{CaseSensitive: true})
	if err != nil || !ok || next.Start != 1000 {
		t.Fatalf("FindNext after cap = %v, %v, %v; want start 1000", next, ok, err)
	}
}

func TestCreateAndRestoreSnapshotFacade(t *testing.T) {
	b := InitFromString("hello", NoEOL)
	id := b.CreateSnapshot("checkpoint")

	if err := b.Append(" world"); err != nil {
		t.Fatal(err)
	}
	if got := b.Text(); got != "hello world" {
		t.Fatalf("Text() = %q", got)
	}

	if err := b.RestoreSnapshot(id); err != nil {
		t.Fatal(err)
	}
	if got := b.Text(); got != "hello" {
		t.Fatalf("after RestoreSnapshot, Text() = %q", got)
	}
}

func TestGroupedReplaceAllUndoesAsOneUnit(t *testing.T) {
	b := InitFromString("cat cat cat", NoEOL)
	count, err := b.ReplaceAll("cat", SearchOptions{CaseSensitive: true}, "dog", 0)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("ReplaceAll count = %d, want 3", count)
	}
	if got := b.Text(); got != "dog dog dog" {
		t.Fatalf("Text() = %q", got)
	}
	if _, ok, err := b.Undo(); err != nil || !ok {
		t.Fatalf("Undo: ok=%v err=%v", ok, err)
	}
	if got := b.Text(); got != "cat cat cat" {
		t.Fatalf("after Undo, Text() = %q, want the single pre-replace state", got)
	}
}

func TestDiffSinceReportsLineChanges(t *testing.T) {
	b := InitFromString("one\ntwo\nthree", NoEOL)
	id := b.CreateSnapshot("before")

	if err := b.Replace(Range{Start: 4, End: 7}, "TWO"); err != nil {
		t.Fatal(err)
	}

	result, err := b.DiffSince(id)
	if err != nil {
		t.Fatal(err)
	}
	if !result.HasChanges() {
		t.Fatalf("expected DiffSince to report changes, got %+v", result.Hunks)
	}
}

func TestReplaceFirst(t *testing.T) {
	b := InitFromString("one two one", NoEOL)
	ok, err := b.ReplaceFirst("one", SearchOptions{CaseSensitive: true}, "ONE")
	if err != nil || !ok {
		t.Fatalf("ReplaceFirst: ok=%v err=%v", ok, err)
	}
	if got := b.Text(); got != "ONE two one" {
		t.Fatalf("Text() = %q", got)
	}
}
