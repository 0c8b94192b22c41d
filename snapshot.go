package piecetree

import "github.com/itsakc-me/piecetree-go/internal/snapshot"

// CreateSnapshot captures the document's current text and EOL policy
// under name, returning its SnapshotID. An empty name creates an
// anonymous, ID-only snapshot.
func (b *Buffer) CreateSnapshot(name string) SnapshotID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snaps.Create(name, b.doc)
}

// RestoreSnapshot replaces the document's entire content and EOL
// policy with the state captured under id. It does not touch undo
// history; the restoration itself is not undoable.
func (b *Buffer) RestoreSnapshot(id SnapshotID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	snap, ok := b.snaps.Get(id)
	if !ok {
		return snapshot.ErrNotFound
	}
	return snap.Restore(b.doc)
}

// RestoreSnapshotByName is the named-lookup counterpart to
// RestoreSnapshot, supplementing the bare id-based public surface.
func (b *Buffer) RestoreSnapshotByName(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	snap, ok := b.snaps.GetByName(name)
	if !ok {
		return snapshot.ErrNotFound
	}
	return snap.Restore(b.doc)
}

// Snapshots lists every retained snapshot, oldest first.
func (b *Buffer) Snapshots() []*snapshot.Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snaps.List()
}

// ChangesSince returns every recorded change committed after rev.
func (b *Buffer) ChangesSince(rev RevisionID) []snapshot.Change {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tracker.ChangesSince(rev)
}

// DiffSince computes a Myers line diff between the snapshot captured
// under id and the document's current text.
func (b *Buffer) DiffSince(id SnapshotID) (snapshot.DiffResult, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	snap, ok := b.snaps.Get(id)
	if !ok {
		return snapshot.DiffResult{}, snapshot.ErrNotFound
	}
	return snapshot.ComputeLineDiff(snap.Text(), b.doc.Text(), snapshot.DefaultDiffOptions()), nil
}
