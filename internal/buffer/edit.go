package buffer

import (
	"github.com/itsakc-me/piecetree-go/internal/errs"
	"github.com/itsakc-me/piecetree-go/internal/piece"
)

// Insert inserts text at offset, normalizing its line endings first
// when normalization is enabled. It returns the committed RevisionID.
func (d *Document) Insert(offset int, text string) (RevisionID, error) {
	if offset < 0 || offset > d.tree.Length() {
		return 0, errs.New(errs.OutOfRange, "insert offset out of document bounds")
	}
	if text == "" {
		return d.revision, nil
	}
	if d.normalizeEOL {
		text = normalizeEOL(text, d.eol)
	}
	store := d.tree.Store()
	start := store.AppendAdded(text)
	p := piece.NewPiece(store.Slice(piece.AddedBufferID, start, len(text)), piece.AddedBufferID, start, len(text))
	d.tree.InsertPiece(p, offset)
	return d.bumpRevision(), nil
}

// Append inserts text at the document end.
func (d *Document) Append(text string) (RevisionID, error) {
	return d.Insert(d.tree.Length(), text)
}

// Delete removes [r.Start, r.End). A range with Start >= End is a
// no-op (not an error). Deleting the whole document resets the tree
// but keeps the document's EOL configuration.
func (d *Document) Delete(r Range) (RevisionID, error) {
	if r.Start < 0 || r.End > d.tree.Length() {
		return 0, errs.New(errs.OutOfRange, "delete range out of document bounds")
	}
	if r.Start >= r.End {
		return d.revision, nil
	}
	if r.Start == 0 && r.End == d.tree.Length() {
		d.tree.Reset()
		return d.bumpRevision(), nil
	}
	d.tree.DeleteRange(r.Start, r.End)
	return d.bumpRevision(), nil
}

// Replace atomically deletes [r.Start, r.End) and inserts text at
// r.Start, as a single committed operation.
func (d *Document) Replace(r Range, text string) (RevisionID, error) {
	if r.Start < 0 || r.End > d.tree.Length() || r.Start > r.End {
		return 0, errs.New(errs.OutOfRange, "replace range out of document bounds")
	}
	if r.Start < r.End {
		if r.Start == 0 && r.End == d.tree.Length() {
			d.tree.Reset()
		} else {
			d.tree.DeleteRange(r.Start, r.End)
		}
	}
	if text != "" {
		if d.normalizeEOL {
			text = normalizeEOL(text, d.eol)
		}
		store := d.tree.Store()
		start := store.AppendAdded(text)
		p := piece.NewPiece(store.Slice(piece.AddedBufferID, start, len(text)), piece.AddedBufferID, start, len(text))
		d.tree.InsertPiece(p, r.Start)
	}
	return d.bumpRevision(), nil
}
