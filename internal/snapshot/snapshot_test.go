package snapshot

import (
	"testing"

	"github.com/itsakc-me/piecetree-go/internal/buffer"
)

func newDoc(text string) *buffer.Document {
	return buffer.NewDocumentFromString(text, buffer.None, false)
}

func TestCreateAndRestoreSnapshot(t *testing.T) {
	d := newDoc("hello world")
	mgr := NewManager()

	id := mgr.Create("checkpoint", d)

	if _, err := d.Insert(5, ", there"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Delete(buffer.Range{Start: 0, End: 5}); err != nil {
		t.Fatal(err)
	}
	if d.Text() == "hello world" {
		t.Fatal("document should have changed before restoring")
	}

	snap, ok := mgr.Get(id)
	if !ok {
		t.Fatal("snapshot not found")
	}
	if err := snap.Restore(d); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "hello world" {
		t.Fatalf("after Restore, Text() = %q, want %q", got, "hello world")
	}
}

func TestGetByName(t *testing.T) {
	d := newDoc("abc")
	mgr := NewManager()
	mgr.Create("before_ai_edit", d)

	snap, ok := mgr.GetByName("before_ai_edit")
	if !ok || snap.Text() != "abc" {
		t.Fatalf("GetByName = %v, %v", snap, ok)
	}

	if _, ok := mgr.GetByName("missing"); ok {
		t.Fatal("expected no snapshot named 'missing'")
	}
}

func TestCreateReplacesSameName(t *testing.T) {
	d := newDoc("v1")
	mgr := NewManager()
	mgr.Create("tag", d)

	if _, err := d.Append("-v2"); err != nil {
		t.Fatal(err)
	}
	mgr.Create("tag", d)

	if mgr.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 (replaced, not duplicated)", mgr.Count())
	}
	snap, _ := mgr.GetByName("tag")
	if snap.Text() != "v1-v2" {
		t.Fatalf("Text() = %q", snap.Text())
	}
}

func TestPruneKeepN(t *testing.T) {
	d := newDoc("x")
	mgr := NewManager()
	for i := 0; i < 5; i++ {
		mgr.Create("", d)
	}
	removed := mgr.PruneKeepN(2)
	if removed != 3 || mgr.Count() != 2 {
		t.Fatalf("removed=%d count=%d, want removed=3 count=2", removed, mgr.Count())
	}
}

func TestTrackerChangesSince(t *testing.T) {
	d := newDoc("abc")
	tr := NewTracker()

	rev, err := d.Insert(3, "d")
	if err != nil {
		t.Fatal(err)
	}
	tr.RecordChange(rev, Change{Kind: Insert, Range: buffer.Range{Start: 3, End: 3}, NewText: "d"}, d)

	baseline := rev

	rev2, err := d.Append("e")
	if err != nil {
		t.Fatal(err)
	}
	tr.RecordChange(rev2, Change{Kind: Insert, Range: buffer.Range{Start: 4, End: 4}, NewText: "e"}, d)

	changes := tr.ChangesSince(baseline)
	if len(changes) != 1 || changes[0].NewText != "e" {
		t.Fatalf("ChangesSince(%d) = %v", baseline, changes)
	}

	if text, ok := tr.TextAtRevision(rev2); !ok || text != "abcde" {
		t.Fatalf("TextAtRevision(%d) = %q, %v", rev2, text, ok)
	}
}

func TestTrackerBoundedChangeHistory(t *testing.T) {
	d := newDoc("")
	tr := NewTracker(WithMaxChanges(3))

	for i := 0; i < 5; i++ {
		rev, err := d.Append("x")
		if err != nil {
			t.Fatal(err)
		}
		tr.RecordChange(rev, Change{Kind: Insert, NewText: "x"}, d)
	}

	changes := tr.ChangesSince(0)
	if len(changes) != 3 {
		t.Fatalf("ChangesSince(0) returned %d changes, want bounded to 3", len(changes))
	}
}
