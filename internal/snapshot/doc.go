// Package snapshot provides named checkpoints and a bounded change
// history over a buffer.Document: CreateSnapshot/RestoreSnapshot for
// checkpointing full document state (text and EOL policy), plus a
// Tracker that records a ring buffer of changes and periodic full-text
// revisions so callers can ask "what changed since revision X?".
//
// Unlike a structurally-shared rope, the underlying piece tree is
// mutated in place, so a Snapshot here holds a full text copy rather
// than an O(1) reference — restoring a snapshot re-seeds the document
// from that copy. Use sparingly on very large buffers.
package snapshot
