package piecetree

import (
	"github.com/itsakc-me/piecetree-go/internal/history"
	"github.com/itsakc-me/piecetree-go/internal/snapshot"
)

// changeFor converts an already-executed history.Command into the
// snapshot.Change record the tracker keeps for ChangesSince queries.
// Buffer.execute/executeLocked (edit.go), the only caller, is always
// given one of the three leaf commands directly: grouped edits (e.g.
// ReplaceAll) call executeLocked once per member command inside the
// group rather than passing the assembled history.CompositeCommand
// that EndGroup pushes onto the undo stack, so every individual edit
// still reaches the tracker and no CompositeCommand case is needed
// here.
func changeFor(cmd history.Command) snapshot.Change {
	switch c := cmd.(type) {
	case *history.InsertCommand:
		return snapshot.Change{
			Kind:    snapshot.Insert,
			Range:   Range{Start: c.Offset, End: c.Offset},
			NewText: c.Text,
		}
	case *history.DeleteCommand:
		return snapshot.Change{
			Kind:  snapshot.Delete,
			Range: c.Range,
		}
	case *history.ReplaceCommand:
		return snapshot.Change{
			Kind:    snapshot.Replace,
			Range:   c.Range,
			NewText: c.Inserted,
		}
	default:
		return snapshot.Change{}
	}
}
