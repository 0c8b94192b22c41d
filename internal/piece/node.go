package piece

type color bool

const (
	red   color = true
	black color = false
)

// node is one entry in the red-black tree: a Piece plus tree structure
// and the augmented aggregates used for logarithmic lookups. Nodes are
// heap-allocated with owning child pointers and a non-owning parent
// back-pointer; Go's garbage collector removes the cycle-management
// concern a manual-memory implementation would have to solve with an
// arena, so no index-based node table is used here.
type node struct {
	piece Piece
	clr   color

	left, right, parent *node

	// documentStart is the absolute offset where this piece begins in
	// the logical document. Cached directly rather than derived, and
	// kept correct by shiftDocumentStartsFrom after every structural edit.
	documentStart int

	// leftSubtreeLength is the sum of piece lengths over this node's
	// left subtree. leftSubtreeLFCount is the sum of line-break counts
	// (len(piece.LineStarts)) over this node's left subtree. Both are
	// recomputed bottom-up after rotations and structural changes.
	leftSubtreeLength  int
	leftSubtreeLFCount int
}

func newNode(p Piece, documentStart int) *node {
	return &node{piece: p, clr: red, documentStart: documentStart}
}

func isRed(n *node) bool {
	return n != nil && n.clr == red
}

func lfCount(n *node) int {
	if n == nil {
		return 0
	}
	return len(n.piece.LineStarts)
}

func length(n *node) int {
	if n == nil {
		return 0
	}
	return n.piece.Length
}

// subtreeLength returns the total piece length over n's entire subtree
// (n included), using the cached left aggregate plus a mirrored
// computation for the right side via n.right's own fields.
func subtreeLength(n *node) int {
	if n == nil {
		return 0
	}
	return n.leftSubtreeLength + n.piece.Length + subtreeLength(n.right)
}

func subtreeLFCount(n *node) int {
	if n == nil {
		return 0
	}
	return n.leftSubtreeLFCount + lfCount(n) + subtreeLFCount(n.right)
}

func minimum(n *node) *node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maximum(n *node) *node {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns n's in-order neighbour, or nil if n is last.
func successor(n *node) *node {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return minimum(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// predecessor returns n's in-order previous neighbour, or nil if n is first.
func predecessor(n *node) *node {
	if n == nil {
		return nil
	}
	if n.left != nil {
		return maximum(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}
