// Package search implements SearchEngine: regex and literal search
// over a piecewise document, returning absolute byte offsets.
//
// It depends only on a small TextSource interface rather than on
// internal/buffer directly, so this package stays a leaf: buffer,
// history and the root facade can all depend on search without any
// import cycle.
package search
