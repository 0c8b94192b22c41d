// Package piecetree is the public facade over the storage core: a
// piece-tree backed text buffer with coordinate conversion, search,
// undo/redo, and named snapshots, combined into one thread-safe API.
//
// All operations are safe for concurrent use; Buffer serializes access
// with a single RWMutex rather than exposing its component packages'
// independent locking.
package piecetree

import (
	"io"
	"sync"

	"github.com/itsakc-me/piecetree-go/internal/buffer"
	"github.com/itsakc-me/piecetree-go/internal/history"
	"github.com/itsakc-me/piecetree-go/internal/search"
	"github.com/itsakc-me/piecetree-go/internal/snapshot"
)

// Re-exported types for convenience, so callers never need to import
// the internal packages directly.
type (
	// Range is a half-open [Start, End) byte range.
	Range = buffer.Range

	// Position is a 1-based (Line, Column) location.
	Position = buffer.Position

	// EOLPolicy selects a line-terminator convention.
	EOLPolicy = buffer.EOLPolicy

	// RevisionID uniquely identifies a committed document state.
	RevisionID = buffer.RevisionID

	// SearchOptions configures a query passed to FindAll / FindNext /
	// FindPrevious.
	SearchOptions = search.Options

	// Match is one search result.
	Match = search.Match

	// SnapshotID identifies a snapshot returned by CreateSnapshot.
	SnapshotID = snapshot.ID

	// ListenerToken identifies a registered history listener.
	ListenerToken = history.ListenerToken

	// Listener is invoked after every undo-stack mutation.
	Listener = history.Listener
)

// Re-exported EOL policy values.
const (
	LF    = buffer.LF
	CRLF  = buffer.CRLF
	CR    = buffer.CR
	NoEOL = buffer.None
)

// Buffer composes the piece-tree document, search engine, undo/redo
// history and snapshot tracker into the public surface.
type Buffer struct {
	mu sync.RWMutex

	doc     *buffer.Document
	se      *search.Engine
	hist    *history.History
	snaps   *snapshot.Manager
	tracker *snapshot.Tracker
}

// docSearchSource adapts *buffer.Document to search.TextSource, whose
// two-int TextRange signature differs from Document's Range-based one.
type docSearchSource struct{ doc *buffer.Document }

func (s docSearchSource) Length() int { return s.doc.Length() }
func (s docSearchSource) TextRange(start, end int) string {
	return s.doc.TextRange(Range{Start: start, End: end})
}

func wire(doc *buffer.Document) *Buffer {
	return &Buffer{
		doc:     doc,
		se:      search.New(docSearchSource{doc: doc}),
		hist:    history.New(doc, history.DefaultMaxUndoLevels),
		snaps:   snapshot.NewManager(),
		tracker: snapshot.NewTracker(),
	}
}

// New returns an empty Buffer with EOL policy None and normalization
// off.
func New() *Buffer {
	return wire(buffer.NewDocument(buffer.None, false))
}

// InitFromString returns a Buffer initialized with text under eol.
// Normalization is off; pass text already in the policy's terminator
// convention, or enable normalization afterward with SetNormalizeEOL
// before further edits.
func InitFromString(text string, eol EOLPolicy) *Buffer {
	return wire(buffer.NewDocumentFromString(text, eol, false))
}

// InitFromChunks drains src and initializes a Buffer from its
// concatenated content, reading in bounded chunks rather than
// requiring the whole source up front.
func InitFromChunks(src io.Reader, eol EOLPolicy) (*Buffer, error) {
	doc, err := buffer.NewDocumentFromReader(src, eol, false)
	if err != nil {
		return nil, err
	}
	return wire(doc), nil
}

// Reset empties the buffer and clears all undo history, snapshots,
// and tracked changes.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc.Reset()
	b.hist.ClearHistory()
	b.snaps.Clear()
	b.tracker.Clear()
}
