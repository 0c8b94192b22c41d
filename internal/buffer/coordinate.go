package buffer

import (
	"strings"

	"github.com/itsakc-me/piecetree-go/internal/errs"
	"github.com/itsakc-me/piecetree-go/internal/piece"
)

// Length returns the total document length in bytes.
func (d *Document) Length() int { return d.tree.Length() }

// LineCount returns the number of lines: the total line-break count,
// plus one more if the document is non-empty and does not end in a
// terminator.
func (d *Document) LineCount() int {
	if d.tree.IsEmpty() {
		return 0
	}
	n := d.tree.LineBreakCount()
	if !d.endsInTerminator() {
		n++
	}
	return n
}

func (d *Document) endsInTerminator() bool {
	last := d.tree.Last()
	if !last.Valid() {
		return false
	}
	p := last.Piece()
	if len(p.LineStarts) == 0 {
		return false
	}
	return p.LineStarts[len(p.LineStarts)-1] == p.Length
}

// Text returns the full document content.
func (d *Document) Text() string {
	return d.TextRange(Range{0, d.tree.Length()})
}

// TextWithEOL returns the full document content with every LF, CR and
// CRLF terminator rewritten to policy's sequence. Stored content is
// unaffected.
func (d *Document) TextWithEOL(policy EOLPolicy) string {
	return normalizeEOL(d.Text(), policy)
}

// TextRange returns the concatenation of the slices of every piece
// intersecting [r.Start, r.End).
func (d *Document) TextRange(r Range) string {
	if !r.IsValid() || r.Start < 0 || r.End > d.tree.Length() {
		return ""
	}
	if r.IsEmpty() {
		return ""
	}
	var b strings.Builder
	b.Grow(r.Len())
	store := d.tree.Store()
	for it := d.tree.IterFrom(r.Start); ; {
		ref := it.Next()
		if !ref.Valid() {
			break
		}
		p := ref.Piece()
		nodeStart := ref.DocumentStart()
		nodeEnd := nodeStart + p.Length
		from := 0
		if r.Start > nodeStart {
			from = r.Start - nodeStart
		}
		to := p.Length
		if r.End < nodeEnd {
			to = r.End - nodeStart
		}
		if from >= to {
			if nodeStart >= r.End {
				break
			}
			continue
		}
		b.Write(store.Slice(p.BufferID, p.Start+from, to-from))
		if nodeEnd >= r.End {
			break
		}
	}
	return b.String()
}

// CharAt returns the single byte at offset, or 0 and false if offset
// is out of range.
func (d *Document) CharAt(offset int) (byte, bool) {
	if offset < 0 || offset >= d.tree.Length() {
		return 0, false
	}
	s := d.TextRange(Range{offset, offset + 1})
	if s == "" {
		return 0, false
	}
	return s[0], true
}

// PositionAt converts a 0-based byte offset to a 1-based (line,
// column) Position.
func (d *Document) PositionAt(offset int) (Position, error) {
	if offset < 0 || offset > d.tree.Length() {
		return Position{}, errs.New(errs.OutOfRange, "offset out of document bounds")
	}
	if d.tree.IsEmpty() {
		return Position{1, 1}, nil
	}
	ref := d.tree.FindByOffset(offset)
	if !ref.Valid() {
		ref = d.tree.Last()
	}
	p := ref.Piece()
	relativeOffset := offset - ref.DocumentStart() + 1

	localLine := 1
	found := false
	for i, ls := range p.LineStarts {
		if relativeOffset <= ls {
			localLine = i + 1
			found = true
			break
		}
	}
	if !found {
		localLine = len(p.LineStarts) + 1
	}

	column := relativeOffset
	if localLine > 1 {
		column = relativeOffset - p.LineStarts[localLine-2]
	}

	line := d.tree.GlobalLine(ref, localLine)
	if localLine == 1 {
		// The line may have started in an earlier piece.
		lineStart, err := d.OffsetAt(line, 1)
		if err != nil {
			return Position{}, err
		}
		column = offset - lineStart + 1
	}
	return Position{Line: line, Column: column}, nil
}

// OffsetAt converts a 1-based (line, column) Position to a 0-based
// byte offset. A column beyond the line's length clamps to the line
// end. A non-existent line returns Length().
func (d *Document) OffsetAt(line, column int) (int, error) {
	if line < 1 {
		return 0, errs.New(errs.InvalidArgument, "line must be >= 1")
	}
	if column < 1 {
		return 0, errs.New(errs.InvalidArgument, "column must be >= 1")
	}
	if line > d.LineCount() {
		return d.tree.Length(), nil
	}
	ref, lineStartInNode := d.lineStartRef(line)
	if !ref.Valid() {
		return d.tree.Length(), nil
	}
	p := ref.Piece()
	documentOffset := ref.DocumentStart() + lineStartInNode

	if column == 1 {
		return documentOffset, nil
	}
	target := column - 1
	cur := 0
	store := d.tree.Store()

	buf := store.Slice(p.BufferID, p.Start, p.Length)
	for i := lineStartInNode; i < p.Length && cur < target; i++ {
		if isTerminatorByte(buf[i]) {
			return documentOffset + cur, nil
		}
		cur++
	}
	if cur >= target {
		return documentOffset + cur, nil
	}

	for next := ref.Successor(); next.Valid() && cur < target; next = next.Successor() {
		np := next.Piece()
		nbuf := store.Slice(np.BufferID, np.Start, np.Length)
		for i := 0; i < np.Length && cur < target; i++ {
			if isTerminatorByte(nbuf[i]) {
				return documentOffset + cur, nil
			}
			cur++
		}
	}
	return documentOffset + cur, nil
}

// lineStartRef locates the node containing the start of the 1-based
// line and that start's offset relative to the node. Unlike
// FindByLine(line), which names the node holding the terminator that
// ENDS line, the line's start can live in a different node entirely
// whenever a zero-terminator piece (e.g. a mid-line insert) separates
// the previous terminator from the one ending this line — so this
// walks one line-break back and follows its LineStarts entry, which
// may point past the end of its own node and into the successor.
func (d *Document) lineStartRef(line int) (piece.Ref, int) {
	if line == 1 {
		return d.tree.First(), 0
	}
	ref, localIdx := d.tree.FindByLine(line - 1)
	if !ref.Valid() {
		return piece.Ref{}, 0
	}
	p := ref.Piece()
	rel := p.LineStarts[localIdx]
	if rel == p.Length {
		next := ref.Successor()
		if !next.Valid() {
			return piece.Ref{}, 0
		}
		return next, 0
	}
	return ref, rel
}

func isTerminatorByte(b byte) bool { return b == '\n' || b == '\r' }

// LineContent returns the content of the 1-based line, excluding its
// terminator.
func (d *Document) LineContent(line int) (string, error) {
	start, end, err := d.lineRangeOffsets(line)
	if err != nil {
		return "", err
	}
	return d.TextRange(Range{start, end}), nil
}

// LinesContent returns the content of 1-based lines [from, to]
// inclusive, joined by LF.
func (d *Document) LinesContent(from, to int) (string, error) {
	if from < 1 || to < from {
		return "", errs.New(errs.InvalidArgument, "invalid line range")
	}
	parts := make([]string, 0, to-from+1)
	for l := from; l <= to; l++ {
		s, err := d.LineContent(l)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n"), nil
}

// LineLength returns the byte length of the 1-based line's content
// (terminator excluded).
func (d *Document) LineLength(line int) (int, error) {
	start, end, err := d.lineRangeOffsets(line)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// LineRange returns the Range of the 1-based line's content
// (terminator excluded).
func (d *Document) LineRange(line int) (Range, error) {
	start, end, err := d.lineRangeOffsets(line)
	if err != nil {
		return Range{}, err
	}
	return Range{start, end}, nil
}

func (d *Document) lineRangeOffsets(line int) (start, end int, err error) {
	if line < 1 || line > d.LineCount() {
		return 0, 0, errs.New(errs.OutOfRange, "line out of document bounds")
	}
	start, serr := d.OffsetAt(line, 1)
	if serr != nil {
		return 0, 0, serr
	}
	end = d.Length()
	ref, localIdx := d.tree.FindByLine(line)
	if ref.Valid() {
		p := ref.Piece()
		if localIdx < len(p.LineStarts) {
			termEnd := p.LineStarts[localIdx]
			end = ref.DocumentStart() + termEnd
			// walk back over the terminator itself
			buf := d.tree.Store().Slice(p.BufferID, p.Start, p.Length)
			termLen := 1
			if termEnd >= 2 && buf[termEnd-2] == '\r' && buf[termEnd-1] == '\n' {
				termLen = 2
			}
			end -= termLen
		}
	}
	return start, end, nil
}
