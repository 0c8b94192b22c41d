package piecetree

// Undo reverses the most recent edit, returning the cursor offset it
// reports and true, or false if there was nothing to undo.
func (b *Buffer) Undo() (int, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hist.Undo()
}

// Redo re-applies the most recently undone edit.
func (b *Buffer) Redo() (int, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hist.Redo()
}

// BeginGroup opens an undo group: edits executed before the matching
// EndGroup undo and redo as one unit.
func (b *Buffer) BeginGroup(desc string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hist.BeginGroup(desc)
}

// EndGroup closes the innermost open undo group.
func (b *Buffer) EndGroup() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hist.EndGroup()
}

// CanUndo reports whether Undo would do anything.
func (b *Buffer) CanUndo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hist.CanUndo()
}

// CanRedo reports whether Redo would do anything.
func (b *Buffer) CanRedo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hist.CanRedo()
}

// UndoDescription returns the label of the edit Undo would reverse.
func (b *Buffer) UndoDescription() (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hist.UndoDescription()
}

// RedoDescription returns the label of the edit Redo would re-apply.
func (b *Buffer) RedoDescription() (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hist.RedoDescription()
}

// ClearHistory drops the undo and redo stacks.
func (b *Buffer) ClearHistory() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hist.ClearHistory()
}

// UndoSize returns the number of entries on the undo stack.
func (b *Buffer) UndoSize() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hist.UndoSize()
}

// RedoSize returns the number of entries on the redo stack.
func (b *Buffer) RedoSize() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hist.RedoSize()
}

// SetMaxUndoLevels changes the retained undo depth.
func (b *Buffer) SetMaxUndoLevels(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hist.SetMaxUndoLevels(n)
}

// AddListener registers fn to run after every undo-stack mutation.
func (b *Buffer) AddListener(fn Listener) ListenerToken {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hist.AddListener(fn)
}

// RemoveListener unregisters a listener previously returned by
// AddListener.
func (b *Buffer) RemoveListener(tok ListenerToken) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hist.RemoveListener(tok)
}
