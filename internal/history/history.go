package history

import (
	"sync"

	"github.com/itsakc-me/piecetree-go/internal/errs"
)

// DefaultMaxUndoLevels matches the depth the original undo stack was
// bounded to.
const DefaultMaxUndoLevels = 100

// Listener is notified whenever the undo or redo stacks change shape
// (after an Execute outside a group, Undo, Redo, an outermost EndGroup
// that pushes a non-empty group, or ClearHistory). BeginGroup,
// CancelGroup and SetMaxUndoLevels do not notify.
type Listener func()

// ListenerToken identifies a registered Listener for RemoveListener.
type ListenerToken uint64

// History is a two-stack undo/redo log with group nesting and a
// bounded undo depth.
type History struct {
	mu     sync.Mutex
	target Target

	undo []Command
	redo []Command

	maxLevels int

	groupDepth int
	groupLabel string
	groupCmds  []Command

	listeners  map[ListenerToken]Listener
	nextToken  ListenerToken
}

// New returns a History driving target, with maxLevels undo entries
// retained (DefaultMaxUndoLevels if maxLevels <= 0).
func New(target Target, maxLevels int) *History {
	if maxLevels <= 0 {
		maxLevels = DefaultMaxUndoLevels
	}
	return &History{
		target:    target,
		maxLevels: maxLevels,
		listeners: make(map[ListenerToken]Listener),
	}
}

// Execute runs cmd against the target, pushes it onto the undo stack
// (or the active group, if one is open), clears the redo stack, and
// trims the undo stack to maxLevels.
func (h *History) Execute(cmd Command) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := cmd.Execute(h.target); err != nil {
		h.clearLocked()
		return err
	}
	h.push(cmd)
	return nil
}

// clearLocked drops both stacks and any open group. Called whenever a
// command's Execute/Undo step fails: the target's state relationship
// to whatever remains on either stack is no longer guaranteed, so
// neither stack can be safely replayed.
func (h *History) clearLocked() {
	h.undo = nil
	h.redo = nil
	h.groupDepth = 0
	h.groupCmds = nil
	h.groupLabel = ""
	h.notify()
}

func (h *History) push(cmd Command) {
	if h.groupDepth > 0 {
		h.groupCmds = append(h.groupCmds, cmd)
		return
	}
	h.undo = append(h.undo, cmd)
	h.redo = h.redo[:0]
	if len(h.undo) > h.maxLevels {
		h.undo = h.undo[len(h.undo)-h.maxLevels:]
	}
	h.notify()
}

// BeginGroup opens a group: subsequent Execute calls accumulate into a
// CompositeCommand instead of pushing individually, until EndGroup.
// Nested BeginGroup calls increment a depth counter; only the
// outermost EndGroup closes and pushes the group.
func (h *History) BeginGroup(label string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.groupDepth == 0 {
		h.groupLabel = label
		h.groupCmds = nil
	}
	h.groupDepth++
}

// EndGroup closes the innermost open group. When the outermost group
// closes, the accumulated commands are pushed as one CompositeCommand
// (or nothing, if the group was empty).
func (h *History) EndGroup() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.groupDepth == 0 {
		return errs.New(errs.IllegalState, "EndGroup called without a matching BeginGroup")
	}
	h.groupDepth--
	if h.groupDepth > 0 {
		return nil
	}
	cmds := h.groupCmds
	label := h.groupLabel
	h.groupCmds = nil
	h.groupLabel = ""
	if len(cmds) == 0 {
		return nil
	}
	h.undo = append(h.undo, &CompositeCommand{Label: label, Commands: cmds})
	h.redo = h.redo[:0]
	if len(h.undo) > h.maxLevels {
		h.undo = h.undo[len(h.undo)-h.maxLevels:]
	}
	h.notify()
	return nil
}

// CancelGroup discards the currently open outermost group without
// undoing anything already executed within it.
func (h *History) CancelGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.groupDepth = 0
	h.groupCmds = nil
	h.groupLabel = ""
}

// Undo reverses the most recent command, returning the cursor offset
// it reports and true, or false if the undo stack was empty.
func (h *History) Undo() (int, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undo) == 0 {
		return 0, false, nil
	}
	cmd := h.undo[len(h.undo)-1]
	if err := cmd.Undo(h.target); err != nil {
		h.clearLocked()
		return 0, false, err
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cmd)
	h.notify()
	return cmd.Anchor(), true, nil
}

// Redo re-applies the most recently undone command.
func (h *History) Redo() (int, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.redo) == 0 {
		return 0, false, nil
	}
	cmd := h.redo[len(h.redo)-1]
	if err := cmd.Execute(h.target); err != nil {
		h.clearLocked()
		return 0, false, err
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cmd)
	h.notify()
	return cmd.Anchor(), true, nil
}

func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 0
}

func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}

func (h *History) UndoDescription() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undo) == 0 {
		return "", false
	}
	return h.undo[len(h.undo)-1].Description(), true
}

func (h *History) RedoDescription() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.redo) == 0 {
		return "", false
	}
	return h.redo[len(h.redo)-1].Description(), true
}

func (h *History) UndoSize() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo)
}

func (h *History) RedoSize() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo)
}

// ClearHistory drops both stacks and cancels any open group.
func (h *History) ClearHistory() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clearLocked()
}

// SetMaxUndoLevels changes the retained undo depth, trimming the
// oldest entries immediately if the stack now exceeds it.
func (h *History) SetMaxUndoLevels(n int) {
	if n <= 0 {
		n = DefaultMaxUndoLevels
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.maxLevels = n
	if len(h.undo) > n {
		h.undo = h.undo[len(h.undo)-n:]
	}
}

// AddListener registers fn to be called after every stack mutation.
func (h *History) AddListener(fn Listener) ListenerToken {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextToken++
	tok := h.nextToken
	h.listeners[tok] = fn
	return tok
}

// RemoveListener unregisters a listener previously returned by
// AddListener.
func (h *History) RemoveListener(tok ListenerToken) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.listeners, tok)
}

func (h *History) notify() {
	for _, fn := range h.listeners {
		fn()
	}
}
