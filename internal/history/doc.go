// Package history implements the undo/redo command stack: a tagged
// four-case Command variant (Insert, Delete, Replace, Composite), two
// stacks with grouping, and a configurable maximum depth.
//
// Commands never read or mutate History state directly — they only
// drive the Target they are given, which is satisfied by
// *buffer.Document.
package history
