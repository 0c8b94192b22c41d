package snapshot

import (
	"sync"

	"github.com/itsakc-me/piecetree-go/internal/buffer"
)

// DefaultMaxChanges bounds the ring buffer of recorded changes.
const DefaultMaxChanges = 10000

// DefaultMaxRevisions bounds how many full-text revision snapshots are
// retained for TextAtRevision queries.
const DefaultMaxRevisions = 100

type trackedChange struct {
	revision buffer.RevisionID
	change   Change
}

// revisionText is a full-text snapshot taken at a particular revision.
type revisionText struct {
	id   buffer.RevisionID
	text string
}

// Tracker records a bounded history of changes plus periodic full-text
// revisions, answering "what changed since revision X?" queries. It
// composes a Manager for named snapshots. All operations are
// thread-safe.
type Tracker struct {
	mu sync.RWMutex

	changes    []trackedChange
	head       int
	count      int
	maxChanges int

	revisions    map[buffer.RevisionID]revisionText
	maxRevisions int
	oldestRev    buffer.RevisionID

	named *Manager
}

// TrackerOption configures a Tracker at construction time.
type TrackerOption func(*Tracker)

// WithMaxChanges overrides DefaultMaxChanges.
func WithMaxChanges(n int) TrackerOption {
	return func(t *Tracker) {
		t.maxChanges = n
		t.changes = make([]trackedChange, n)
	}
}

// WithMaxRevisions overrides DefaultMaxRevisions.
func WithMaxRevisions(n int) TrackerOption {
	return func(t *Tracker) { t.maxRevisions = n }
}

// NewTracker returns a Tracker with default bounds, as overridden by
// opts.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		maxChanges:   DefaultMaxChanges,
		changes:      make([]trackedChange, DefaultMaxChanges),
		revisions:    make(map[buffer.RevisionID]revisionText),
		maxRevisions: DefaultMaxRevisions,
		named:        NewManager(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RecordChange records a change committed at rev, along with a
// full-text snapshot of doc taken after the change (doc must already
// reflect it).
func (t *Tracker) RecordChange(rev buffer.RevisionID, change Change, doc *buffer.Document) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recordChangeLocked(rev, change)
	t.storeRevisionLocked(rev, doc.Text())
}

func (t *Tracker) recordChangeLocked(rev buffer.RevisionID, change Change) {
	idx := (t.head + t.count) % t.maxChanges
	if t.count < t.maxChanges {
		t.count++
	} else {
		t.head = (t.head + 1) % t.maxChanges
	}
	t.changes[idx] = trackedChange{revision: rev, change: change}
}

func (t *Tracker) storeRevisionLocked(rev buffer.RevisionID, text string) {
	t.revisions[rev] = revisionText{id: rev, text: text}
	if t.oldestRev == 0 || rev < t.oldestRev {
		t.oldestRev = rev
	}
	for len(t.revisions) > t.maxRevisions {
		var oldest buffer.RevisionID
		for id := range t.revisions {
			if oldest == 0 || id < oldest {
				oldest = id
			}
		}
		delete(t.revisions, oldest)
	}
}

// ChangesSince returns every recorded change with revision > rev, in
// chronological order. Changes older than the ring buffer's retention
// window are silently unavailable, matching the bounded-history
// contract.
func (t *Tracker) ChangesSince(rev buffer.RevisionID) []Change {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []Change
	for i := 0; i < t.count; i++ {
		idx := (t.head + i) % t.maxChanges
		tc := t.changes[idx]
		if tc.revision > rev {
			out = append(out, tc.change)
		}
	}
	return out
}

// TextAtRevision returns the full document text as of rev, if that
// revision is still retained.
func (t *Tracker) TextAtRevision(rev buffer.RevisionID) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r, ok := t.revisions[rev]
	return r.text, ok
}

// Snapshots exposes the named-snapshot manager backing this Tracker.
func (t *Tracker) Snapshots() *Manager { return t.named }

// Clear drops all recorded changes and revisions, but keeps named
// snapshots intact.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.changes = make([]trackedChange, t.maxChanges)
	t.head = 0
	t.count = 0
	t.revisions = make(map[buffer.RevisionID]revisionText)
	t.oldestRev = 0
}
