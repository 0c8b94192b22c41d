// Package piece implements the storage core of a piece-tree text buffer:
// an append-only buffer store plus a red-black tree of piece descriptors,
// ordered by document offset and augmented with per-node left-subtree
// aggregates so that offset and line lookups run in time logarithmic in
// the number of pieces.
//
// Nothing in this package understands EOL policy, search, or undo — it
// is the leaf layer that internal/buffer, internal/search and
// internal/history are built on top of.
package piece
