package snapshot

import "github.com/itsakc-me/piecetree-go/internal/buffer"

// Kind classifies a recorded Change.
type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change describes one committed edit: Range is the span it affected
// in the document as it stood before the edit, and NewText is what
// replaced it (empty for a pure delete).
type Change struct {
	Kind    Kind
	Range   buffer.Range
	NewText string
}
