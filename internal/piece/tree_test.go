package piece

import (
	"strings"
	"testing"
	"testing/quick"
)

// text reconstructs the full document by walking the tree in order,
// the way the buffer package's text() operation does.
func text(t *Tree) string {
	var b strings.Builder
	for r := t.First(); r.Valid(); r = r.Successor() {
		p := r.Piece()
		b.Write(t.Store().Slice(p.BufferID, p.Start, p.Length))
	}
	return b.String()
}

func newLoadedTree(initial string) *Tree {
	store := NewStore()
	tr := NewTree(store)
	if initial == "" {
		return tr
	}
	id, _ := store.LoadOriginal(initial)
	n := len(initial)
	if n > OriginalBufferSize {
		n = OriginalBufferSize
	}
	tr.InsertPiece(NewPiece(store.Slice(id, 0, n), id, 0, n), 0)
	return tr
}

func TestEmptyTree(t *testing.T) {
	tr := newLoadedTree("")
	if !tr.IsEmpty() || tr.Length() != 0 {
		t.Fatalf("expected empty tree")
	}
	if err := tr.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestInsertAppendAndMiddle(t *testing.T) {
	tr := newLoadedTree("abcdef")
	at := tr.Store()
	start := at.AppendAdded("XY")
	tr.InsertPiece(NewPiece(at.Slice(AddedBufferID, start, 2), AddedBufferID, start, 2), 3)
	if got := text(tr); got != "abcXYdef" {
		t.Fatalf("text() = %q, want abcXYdef", got)
	}
	if err := tr.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestDeleteSpanningPieces(t *testing.T) {
	tr := newLoadedTree("abcdef")
	store := tr.Store()
	start := store.AppendAdded("XY")
	tr.InsertPiece(NewPiece(store.Slice(AddedBufferID, start, 2), AddedBufferID, start, 2), 3)
	tr.DeleteRange(2, 6)
	if got := text(tr); got != "abef" {
		t.Fatalf("text() = %q, want abef", got)
	}
	if tr.Length() != 4 {
		t.Fatalf("Length() = %d, want 4", tr.Length())
	}
	if err := tr.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestDeleteWholeDocument(t *testing.T) {
	tr := newLoadedTree("hello world")
	tr.DeleteRange(0, tr.Length())
	if !tr.IsEmpty() {
		t.Fatalf("expected empty tree after deleting everything")
	}
	if err := tr.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLineBreakCounting(t *testing.T) {
	tr := newLoadedTree("ab\ncd\r\nef\rgh")
	if tr.LineBreakCount() != 3 {
		t.Fatalf("LineBreakCount() = %d, want 3", tr.LineBreakCount())
	}
}

// reference mirrors tree mutations against a plain string so property
// tests can compare behaviour independent of the tree implementation.
type reference struct {
	tr  *Tree
	ref string
}

func newReference(initial string) *reference {
	return &reference{tr: newLoadedTree(initial), ref: initial}
}

func (r *reference) insert(at int, s string) {
	if at < 0 || at > len(r.ref) || s == "" {
		return
	}
	store := r.tr.Store()
	start := store.AppendAdded(s)
	r.tr.InsertPiece(NewPiece(store.Slice(AddedBufferID, start, len(s)), AddedBufferID, start, len(s)), at)
	r.ref = r.ref[:at] + s + r.ref[at:]
}

func (r *reference) delete(a, b int) {
	if a < 0 || b > len(r.ref) || a >= b {
		return
	}
	r.tr.DeleteRange(a, b)
	r.ref = r.ref[:a] + r.ref[b:]
}

func TestPropertyInsertDeleteMatchesReference(t *testing.T) {
	f := func(base string, ops []uint16) bool {
		if len(base) > 2000 {
			base = base[:2000]
		}
		r := newReference(base)
		for _, raw := range ops {
			op := raw % 3
			switch op {
			case 0:
				at := int(raw) % (len(r.ref) + 1)
				r.insert(at, "x")
			case 1:
				if len(r.ref) == 0 {
					continue
				}
				a := int(raw) % len(r.ref)
				b := a + 1
				r.delete(a, b)
			case 2:
				if len(r.ref) == 0 {
					continue
				}
				a := int(raw) % len(r.ref)
				r.insert(a, "\r\n")
			}
			if err := r.tr.Validate(); err != nil {
				t.Logf("invariant violated: %v", err)
				return false
			}
		}
		return text(r.tr) == r.ref && r.tr.Length() == len(r.ref)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}
