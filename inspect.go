package piecetree

// Text returns the full document content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.Text()
}

// TextWithEOL returns the full content with every terminator rewritten
// to policy's sequence.
func (b *Buffer) TextWithEOL(policy EOLPolicy) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.TextWithEOL(policy)
}

// Length returns the total document length in bytes.
func (b *Buffer) Length() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.Length()
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.LineCount()
}

// LineContent returns the 1-based line's content, terminator excluded.
func (b *Buffer) LineContent(line int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.LineContent(line)
}

// LinesContent returns 1-based lines [from, to] joined by LF.
func (b *Buffer) LinesContent(from, to int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.LinesContent(from, to)
}

// LineLength returns the byte length of the 1-based line's content.
func (b *Buffer) LineLength(line int) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.LineLength(line)
}

// LineRange returns the Range of the 1-based line's content.
func (b *Buffer) LineRange(line int) (Range, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.LineRange(line)
}

// CharAt returns the byte at offset, or 0, false if out of range.
func (b *Buffer) CharAt(offset int) (byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.CharAt(offset)
}

// CharAtPosition is the (line, col) counterpart to CharAt.
func (b *Buffer) CharAtPosition(pos Position) (byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	offset, err := b.doc.OffsetAt(pos.Line, pos.Column)
	if err != nil {
		return 0, false
	}
	return b.doc.CharAt(offset)
}

// TextRange returns the content of r.
func (b *Buffer) TextRange(r Range) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.TextRange(r)
}

// PositionAt converts a 0-based byte offset to a 1-based Position.
func (b *Buffer) PositionAt(offset int) (Position, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.PositionAt(offset)
}

// OffsetAt converts a 1-based (line, column) to a 0-based byte offset.
func (b *Buffer) OffsetAt(line, column int) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.OffsetAt(line, column)
}
