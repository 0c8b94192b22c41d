package buffer

import "testing"

func TestHelloInsertion(t *testing.T) {
	d := NewDocumentFromString("Initial text", None, false)
	off, err := d.OffsetAt(1, 1)
	if err != nil || off != 0 {
		t.Fatalf("OffsetAt(1,1) = %d, %v", off, err)
	}
	if _, err := d.Insert(off, "Hello, "); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := d.Append("World!"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got := d.Text(); got != "Hello, Initial textWorld!" {
		t.Fatalf("Text() = %q", got)
	}
	if d.Length() != 25 {
		t.Fatalf("Length() = %d, want 25", d.Length())
	}
	if d.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", d.LineCount())
	}
}

func TestMultiLineLineAccess(t *testing.T) {
	d := NewDocumentFromString("ab\ncd\r\nef\rgh", None, false)
	if d.LineCount() != 4 {
		t.Fatalf("LineCount() = %d, want 4", d.LineCount())
	}
	for i, want := range []string{"ab", "cd", "ef", "gh"} {
		got, err := d.LineContent(i + 1)
		if err != nil || got != want {
			t.Fatalf("LineContent(%d) = %q, %v; want %q", i+1, got, err, want)
		}
	}
	off, err := d.OffsetAt(3, 1)
	if err != nil || off != 7 {
		t.Fatalf("OffsetAt(3,1) = %d, %v; want 7", off, err)
	}
	pos, err := d.PositionAt(7)
	if err != nil || pos != (Position{3, 1}) {
		t.Fatalf("PositionAt(7) = %v, %v; want (3,1)", pos, err)
	}
}

func TestDeleteSpanningPieces(t *testing.T) {
	d := NewDocumentFromString("abcdef", None, false)
	if _, err := d.Insert(3, "XY"); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "abcXYdef" {
		t.Fatalf("Text() = %q", got)
	}
	if _, err := d.Delete(Range{2, 6}); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "abef" {
		t.Fatalf("Text() = %q, want abef", got)
	}
	if d.Length() != 4 {
		t.Fatalf("Length() = %d, want 4", d.Length())
	}
}

func TestReplace(t *testing.T) {
	d := NewDocumentFromString("The quick brown fox", None, false)
	if _, err := d.Replace(Range{4, 9}, "slow"); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "The slow brown fox" {
		t.Fatalf("Text() = %q", got)
	}
}

func TestEOLNormalization(t *testing.T) {
	d := NewDocumentFromString("a\r\nb\rc\nd", LF, true)
	if got := d.Text(); got != "a\nb\nc\nd" {
		t.Fatalf("Text() = %q", got)
	}
	if d.LineCount() != 4 {
		t.Fatalf("LineCount() = %d, want 4", d.LineCount())
	}
	if got := d.TextWithEOL(CRLF); got != "a\r\nb\r\nc\r\nd" {
		t.Fatalf("TextWithEOL(CRLF) = %q", got)
	}
}

func TestDeleteEmptyRangeIsNoop(t *testing.T) {
	d := NewDocumentFromString("hello", None, false)
	if _, err := d.Delete(Range{2, 2}); err != nil {
		t.Fatal(err)
	}
	if d.Text() != "hello" {
		t.Fatalf("Text() = %q", d.Text())
	}
}

func TestOffsetAtAfterZeroTerminatorInsertSplit(t *testing.T) {
	d := NewDocumentFromString("ab\ncd\nef", None, false)
	if _, err := d.Insert(4, "XY"); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "ab\ncXYd\nef" {
		t.Fatalf("Text() = %q", got)
	}
	off, err := d.OffsetAt(2, 1)
	if err != nil || off != 3 {
		t.Fatalf("OffsetAt(2,1) = %d, %v; want 3", off, err)
	}
	line, err := d.LineContent(2)
	if err != nil || line != "cXYd" {
		t.Fatalf("LineContent(2) = %q, %v; want cXYd", line, err)
	}
}

func TestOffsetAtPositionAtRoundTripAfterSplit(t *testing.T) {
	d := NewDocumentFromString("ab\ncd\nef", None, false)
	if _, err := d.Insert(4, "XY"); err != nil {
		t.Fatal(err)
	}
	for o := 0; o <= d.Length(); o++ {
		pos, err := d.PositionAt(o)
		if err != nil {
			t.Fatalf("PositionAt(%d): %v", o, err)
		}
		back, err := d.OffsetAt(pos.Line, pos.Column)
		if err != nil || back != o {
			t.Fatalf("OffsetAt(PositionAt(%d)=%v) = %d, %v; want %d", o, pos, back, err, o)
		}
	}
}

func TestOutOfRangeFails(t *testing.T) {
	d := NewDocumentFromString("hello", None, false)
	if _, err := d.PositionAt(-1); err == nil {
		t.Fatal("expected OutOfRange error")
	}
	if _, err := d.PositionAt(100); err == nil {
		t.Fatal("expected OutOfRange error")
	}
}
