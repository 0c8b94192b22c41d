package piecetree

import "github.com/itsakc-me/piecetree-go/internal/history"

// Insert inserts text at offset, as an undoable edit.
func (b *Buffer) Insert(offset int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.execute(&history.InsertCommand{Offset: offset, Text: text})
}

// InsertAt inserts text at a 1-based (line, column) position, as an
// undoable edit — the (line, col) counterpart to Insert(offset, ...).
func (b *Buffer) InsertAt(pos Position, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	offset, err := b.doc.OffsetAt(pos.Line, pos.Column)
	if err != nil {
		return err
	}
	return b.execute(&history.InsertCommand{Offset: offset, Text: text})
}

// Append inserts text at the current document end, as an undoable
// edit.
func (b *Buffer) Append(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.execute(&history.InsertCommand{Offset: b.doc.Length(), Text: text})
}

// Delete removes r, as an undoable edit.
func (b *Buffer) Delete(r Range) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.execute(&history.DeleteCommand{Range: r})
}

// Replace atomically replaces r with text, as one undoable edit.
func (b *Buffer) Replace(r Range, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.execute(&history.ReplaceCommand{Range: r, Inserted: text})
}

// ReplaceFirst replaces the first match of query at or after offset 0
// with text, as one undoable edit. It reports whether a match was
// found.
func (b *Buffer) ReplaceFirst(query string, opts SearchOptions, text string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, ok, err := b.se.FindNext(query, 0, opts)
	if err != nil || !ok {
		return false, err
	}
	cmd := &history.ReplaceCommand{Range: Range{Start: m.Start, End: m.End}, Inserted: text}
	if err := b.execute(cmd); err != nil {
		return false, err
	}
	return true, nil
}

// ReplaceAll replaces every match of query, up to maxCount (0 means
// no caller-imposed limit, still bounded by search.MatchesCap), with
// text, as a single undoable group. It returns how many were
// replaced.
func (b *Buffer) ReplaceAll(query string, opts SearchOptions, text string, maxCount int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	matches, err := b.se.FindAll(query, 0, opts, maxCount)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, nil
	}

	b.hist.BeginGroup("Replace All")
	shift := 0
	for _, m := range matches {
		r := Range{Start: m.Start + shift, End: m.End + shift}
		cmd := &history.ReplaceCommand{Range: r, Inserted: text}
		if err := b.executeLocked(cmd); err != nil {
			_ = b.hist.EndGroup()
			return 0, err
		}
		shift += len(text) - (m.End - m.Start)
	}
	if err := b.hist.EndGroup(); err != nil {
		return 0, err
	}
	return len(matches), nil
}

// execute runs cmd through history and records it for change tracking.
func (b *Buffer) execute(cmd history.Command) error {
	return b.executeLocked(cmd)
}

func (b *Buffer) executeLocked(cmd history.Command) error {
	if err := b.hist.Execute(cmd); err != nil {
		return err
	}
	rev := b.doc.Revision()
	b.tracker.RecordChange(rev, changeFor(cmd), b.doc)
	return nil
}
