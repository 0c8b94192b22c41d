// Package buffer implements CoordinateMap and Editor: the
// coordinate-conversion and insert/delete/replace primitives of a
// piece-tree text buffer, plus EOL policy normalization. It is built
// directly on internal/piece and knows nothing about search, undo or
// named snapshots — those are internal/search, internal/history and
// internal/snapshot, composed by the root Buffer facade.
package buffer
