package history

import "github.com/itsakc-me/piecetree-go/internal/buffer"

// Target is what a Command drives. *buffer.Document satisfies it.
type Target interface {
	Insert(offset int, text string) (buffer.RevisionID, error)
	Delete(r buffer.Range) (buffer.RevisionID, error)
	Replace(r buffer.Range, text string) (buffer.RevisionID, error)
	TextRange(r buffer.Range) string
}

// Command is the four-case tagged variant: Insert, Delete, Replace or
// Composite. No virtual-dispatch machinery beyond this interface is
// needed since there are exactly four concrete shapes.
type Command interface {
	// Execute applies the command to t. Delete and Replace capture
	// their pre-image here, at execution time, not later at undo time.
	Execute(t Target) error
	// Undo reverses a previously executed command.
	Undo(t Target) error
	// Description is a short human-readable label for UndoDescription
	// and RedoDescription.
	Description() string
	// Anchor is the offset the cursor should return to after this
	// command is undone or redone.
	Anchor() int
}

// InsertCommand inserts Text at Offset.
type InsertCommand struct {
	Offset int
	Text   string
}

func (c *InsertCommand) Execute(t Target) error {
	_, err := t.Insert(c.Offset, c.Text)
	return err
}

func (c *InsertCommand) Undo(t Target) error {
	_, err := t.Delete(buffer.Range{Start: c.Offset, End: c.Offset + len(c.Text)})
	return err
}

func (c *InsertCommand) Description() string { return "Insert" }
func (c *InsertCommand) Anchor() int          { return c.Offset + len(c.Text) }

// DeleteCommand deletes Range. Removed captures the pre-image text,
// read from the target during Execute.
type DeleteCommand struct {
	Range   buffer.Range
	Removed string
}

func (c *DeleteCommand) Execute(t Target) error {
	c.Removed = t.TextRange(c.Range)
	_, err := t.Delete(c.Range)
	return err
}

func (c *DeleteCommand) Undo(t Target) error {
	_, err := t.Insert(c.Range.Start, c.Removed)
	return err
}

func (c *DeleteCommand) Description() string { return "Delete" }
func (c *DeleteCommand) Anchor() int          { return c.Range.Start }

// ReplaceCommand replaces Range with Inserted. Removed captures the
// pre-image text read from the target during Execute; undo replaces
// [Range.Start, Range.Start+len(Inserted)) back with Removed.
type ReplaceCommand struct {
	Range    buffer.Range
	Inserted string
	Removed  string
}

func (c *ReplaceCommand) Execute(t Target) error {
	c.Removed = t.TextRange(c.Range)
	_, err := t.Replace(c.Range, c.Inserted)
	return err
}

func (c *ReplaceCommand) Undo(t Target) error {
	back := buffer.Range{Start: c.Range.Start, End: c.Range.Start + len(c.Inserted)}
	_, err := t.Replace(back, c.Removed)
	return err
}

func (c *ReplaceCommand) Description() string { return "Replace" }
func (c *ReplaceCommand) Anchor() int          { return c.Range.Start + len(c.Inserted) }

// CompositeCommand groups several commands so they undo and redo as
// one unit. Undo runs its members in reverse order.
type CompositeCommand struct {
	Label    string
	Commands []Command
}

func (c *CompositeCommand) Execute(t Target) error {
	for _, cmd := range c.Commands {
		if err := cmd.Execute(t); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositeCommand) Undo(t Target) error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(t); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositeCommand) Description() string {
	if c.Label != "" {
		return c.Label
	}
	return "Composite"
}

func (c *CompositeCommand) Anchor() int {
	if len(c.Commands) == 0 {
		return 0
	}
	return c.Commands[len(c.Commands)-1].Anchor()
}
