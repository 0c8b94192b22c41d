package buffer

import (
	"bufio"
	"io"
	"sync/atomic"

	"github.com/itsakc-me/piecetree-go/internal/errs"
	"github.com/itsakc-me/piecetree-go/internal/piece"
)

// RevisionID uniquely identifies a document revision; it increases by
// one on every committed mutation.
type RevisionID uint64

// Document composes a piece.Tree with the EOL policy and revision
// counter needed to implement CoordinateMap and Editor. It holds no
// lock of its own: the root Buffer facade serializes access, matching
// the single-threaded, cooperative concurrency model the buffer core
// is specified against.
type Document struct {
	tree *piece.Tree

	eol          EOLPolicy
	normalizeEOL bool

	revision RevisionID
}

// NewDocument returns an empty document with the given EOL policy.
func NewDocument(eol EOLPolicy, normalize bool) *Document {
	store := piece.NewStore()
	return &Document{
		tree:         piece.NewTree(store),
		eol:          eol,
		normalizeEOL: normalize,
	}
}

// NewDocumentFromString initializes a document with text, normalizing
// its line endings to eol first when normalize is set.
func NewDocumentFromString(text string, eol EOLPolicy, normalize bool) *Document {
	d := NewDocument(eol, normalize)
	d.initFrom(text)
	return d
}

// NewDocumentFromReader drains r in chunks (the "feed bytes in
// chunks" entry point external file loading is specified against) and
// initializes a document from the concatenated content.
func NewDocumentFromReader(r io.Reader, eol EOLPolicy, normalize bool) (*Document, error) {
	var b []byte
	br := bufio.NewReader(r)
	buf := make([]byte, 64*1024)
	for {
		n, err := br.Read(buf)
		if n > 0 {
			b = append(b, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.Resource, "reading document source", err)
		}
	}
	d := NewDocument(eol, normalize)
	d.initFrom(string(b))
	return d, nil
}

func (d *Document) initFrom(text string) {
	if d.normalizeEOL {
		text = normalizeEOL(text, d.eol)
	} else if d.eol == None {
		d.eol = DetectEOLPolicy(text)
	}
	if text == "" {
		return
	}
	store := d.tree.Store()
	id, _ := store.LoadOriginal(text)
	offset := 0
	for offset < len(text) {
		n := piece.OriginalBufferSize
		if offset+n > len(text) {
			n = len(text) - offset
		}
		buf := store.Slice(piece.BufferID(int(id)+offset/piece.OriginalBufferSize), 0, n)
		d.tree.InsertPiece(piece.NewPiece(buf, piece.BufferID(int(id)+offset/piece.OriginalBufferSize), 0, n), d.tree.Length())
		offset += n
	}
}

// RestoreFrom replaces the document's entire content and EOL policy
// with text and eol, discarding all undo-invisible tree state (the
// revision counter keeps advancing; it is not rewound). Ingress
// normalization, if enabled, is applied to text as usual.
func (d *Document) RestoreFrom(text string, eol EOLPolicy) error {
	d.tree = piece.NewTree(piece.NewStore())
	d.eol = eol
	d.initFrom(text)
	d.bumpRevision()
	return nil
}

// Reset empties the document, discarding all pieces and replacing the
// buffer store (the added buffer's capacity is not retained across a
// full Reset, unlike the in-place delete-everything fast path — see
// Delete).
func (d *Document) Reset() {
	d.tree = piece.NewTree(piece.NewStore())
	d.revision = 0
}

// Revision returns the current RevisionID.
func (d *Document) Revision() RevisionID { return d.revision }

// bumpRevision is called by every committing Editor operation.
func (d *Document) bumpRevision() RevisionID {
	return RevisionID(atomic.AddUint64((*uint64)(&d.revision), 1))
}

// EOL returns the document's current EOL policy.
func (d *Document) EOL() EOLPolicy { return d.eol }

// SetEOL changes the policy used for future ingress normalization and
// for text_with_eol(current) egress. It does not rewrite existing
// content.
func (d *Document) SetEOL(p EOLPolicy) { d.eol = p }

// IsNormalizeEOL reports whether ingress normalization is enabled.
func (d *Document) IsNormalizeEOL() bool { return d.normalizeEOL }

// SetNormalizeEOL toggles ingress normalization.
func (d *Document) SetNormalizeEOL(v bool) { d.normalizeEOL = v }

// Tree exposes the backing piece tree for packages (search, snapshot)
// that need direct read access to it.
func (d *Document) Tree() *piece.Tree { return d.tree }
