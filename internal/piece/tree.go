package piece

// Tree is a red-black tree of Pieces ordered by document offset. Its
// in-order traversal yields the document content. Each node carries
// its own Piece plus the augmented left-subtree aggregates
// (leftSubtreeLength, leftSubtreeLFCount) needed for O(log N) offset
// and line lookups; tree-level length and lfCount totals are kept as
// direct running counters rather than read off the root, since the
// augmented fields only ever summarize a node's *left* subtree.
type Tree struct {
	store  *Store
	root   *node
	length int
	lfCnt  int
}

// NewTree returns an empty tree backed by store.
func NewTree(store *Store) *Tree {
	return &Tree{store: store}
}

// Store returns the backing buffer store.
func (t *Tree) Store() *Store { return t.store }

// Length returns the total document length in bytes.
func (t *Tree) Length() int { return t.length }

// LineBreakCount returns the total number of line-break terminators in
// the document (see LineCount in the buffer package for the "number of
// lines" derived quantity).
func (t *Tree) LineBreakCount() int { return t.lfCnt }

// IsEmpty reports whether the tree has no pieces.
func (t *Tree) IsEmpty() bool { return t.root == nil }

// Ref is an opaque handle onto a node, valid until the next mutating
// call on the tree that produced it.
type Ref struct{ n *node }

// Valid reports whether r refers to an existing node.
func (r Ref) Valid() bool { return r.n != nil }

// Piece returns the referenced node's piece.
func (r Ref) Piece() Piece { return r.n.piece }

// DocumentStart returns the absolute offset where the referenced
// piece begins.
func (r Ref) DocumentStart() int { return r.n.documentStart }

// Successor returns the in-order next node.
func (r Ref) Successor() Ref { return Ref{successor(r.n)} }

// Predecessor returns the in-order previous node.
func (r Ref) Predecessor() Ref { return Ref{predecessor(r.n)} }

// First returns a Ref to the leftmost (first) piece.
func (t *Tree) First() Ref { return Ref{minimum(t.root)} }

// Last returns a Ref to the rightmost (last) piece.
func (t *Tree) Last() Ref { return Ref{maximum(t.root)} }

// FindByOffset returns the node whose [documentStart, documentStart+length)
// contains offset. offset == 0 returns the first node (even when it is
// zero... see IsEmpty); offset == Length() returns an invalid Ref, and
// the caller must handle append-at-end explicitly.
func (t *Tree) FindByOffset(offset int) Ref {
	if offset == 0 {
		return t.First()
	}
	cur := t.root
	for cur != nil {
		if offset >= cur.documentStart && offset < cur.documentStart+cur.piece.Length {
			return Ref{cur}
		}
		if offset < cur.documentStart {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return Ref{}
}

// FindByLine returns the node containing the terminator that ENDS the
// 1-based lineNumber, and the 0-based rank of that terminator within
// the node's own LineStarts. It does not locate where lineNumber
// starts — that can be a different node entirely whenever a
// zero-terminator piece separates the previous terminator from this
// one; callers that need a line's start should walk from
// FindByLine(lineNumber-1)'s result instead (see
// buffer.Document.lineStartRef). It returns an invalid Ref if
// lineNumber is out of range.
//
// Every lineNumber in [1, LineBreakCount()] names a terminated line
// and is reachable by descending the tree with the augmented
// leftSubtreeLFCount aggregate. lineNumber == LineBreakCount()+1 names
// the trailing, unterminated line that exists whenever the document's
// last byte is not itself a terminator; it is not covered by any
// node's own LineStarts entries, so it is located by walking backward
// from the last node to the most recent one that has at least one
// terminator (or to the very first node, at offset 0, if none exists
// anywhere).
func (t *Tree) FindByLine(lineNumber int) (Ref, int) {
	if lineNumber < 1 || t.root == nil {
		return Ref{}, 0
	}
	if lineNumber == t.lfCnt+1 {
		n := maximum(t.root)
		for n != nil && lfCount(n) == 0 {
			n = predecessor(n)
		}
		if n == nil {
			return t.First(), 0
		}
		return Ref{n}, len(n.piece.LineStarts)
	}
	if lineNumber > t.lfCnt {
		return Ref{}, 0
	}
	target := lineNumber
	cur := t.root
	for cur != nil {
		leftLines := cur.leftSubtreeLFCount
		curLines := lfCount(cur)
		if target <= leftLines {
			cur = cur.left
			continue
		}
		if target <= leftLines+curLines {
			return Ref{cur}, target - leftLines - 1
		}
		target -= leftLines + curLines
		cur = cur.right
	}
	return Ref{}, 0
}

// GlobalLine computes the 1-based document line number of localLine
// (the line index within ref's node, 1-based, where 1 means the text
// before the node's first internal line break) by walking from the
// node up to the root. positionAt in the source this tree is modelled
// on only consulted the containing node's immediate left child,
// undercounting whenever the node is reached via a right-child step
// higher up the tree; this walks the full ancestor chain instead.
func (t *Tree) GlobalLine(ref Ref, localLine int) int {
	line := localLine + ref.n.leftSubtreeLFCount
	child := ref.n
	p := child.parent
	for p != nil {
		if child == p.right {
			line += p.leftSubtreeLFCount + lfCount(p)
		}
		child = p
		p = p.parent
	}
	return line
}

// Reset empties the tree. The backing store is not touched; callers
// that want to reclaim buffer memory construct a fresh Store.
func (t *Tree) Reset() {
	t.root = nil
	t.length = 0
	t.lfCnt = 0
}

// --- low-level insertion -------------------------------------------

// insertNode places n into the tree ordered by n.documentStart,
// shifting every node from the current occupant of that offset
// onward by n.piece.Length, then rebalances. n.documentStart must
// already equal either an existing node's documentStart (the later
// piece wins ties) or the current tree Length() (append).
func (t *Tree) insertNode(n *node) {
	occupant := t.FindByOffset(n.documentStart)
	if occupant.Valid() {
		t.shiftDocumentStartsFrom(occupant.n, n.documentStart+n.piece.Length)
	}

	var parent *node
	cur := t.root
	for cur != nil {
		parent = cur
		if n.documentStart < cur.documentStart {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	n.parent = parent
	switch {
	case parent == nil:
		t.root = n
	case n.documentStart < parent.documentStart:
		parent.left = n
	default:
		parent.right = n
	}
	n.clr = red
	n.left, n.right = nil, nil
	t.updateAugmentedUpward(n)

	t.fixInsert(n)
	t.length += n.piece.Length
	t.lfCnt += lfCount(n)
}

// shiftDocumentStartsFrom reassigns documentStart for start and every
// in-order successor, starting at newStart.
func (t *Tree) shiftDocumentStartsFrom(start *node, newStart int) {
	if start == nil || start.documentStart == newStart {
		return
	}
	cur := start
	pos := newStart
	for cur != nil {
		cur.documentStart = pos
		pos += cur.piece.Length
		cur = successor(cur)
	}
}

// InsertPiece inserts p so that it begins at document offset at,
// splitting whichever existing node currently covers at if at falls
// strictly inside it. at == Length() appends.
func (t *Tree) InsertPiece(p Piece, at int) {
	if p.Length == 0 {
		return
	}
	occupant := t.FindByOffset(at)
	if !occupant.Valid() {
		// at == 0 in an empty tree, or at == Length() (append).
		t.insertNode(newNode(p, at))
		return
	}
	n := occupant.n
	if at > n.documentStart {
		splitPoint := at - n.documentStart
		leftPiece := t.slicePiece(n.piece, 0, splitPoint)
		rightPiece := t.slicePiece(n.piece, splitPoint, n.piece.Length)
		nodeDocStart := n.documentStart
		t.deleteNode(n)
		t.insertNode(newNodeAt(leftPiece, nodeDocStart))
		t.insertNode(newNodeAt(rightPiece, at))
	}
	t.insertNode(newNode(p, at))
}

func newNodeAt(p Piece, documentStart int) *node {
	n := newNode(p, documentStart)
	return n
}

// slicePiece returns the Piece covering [from, to) of parent's range,
// recomputing its line-start cache from the backing store.
func (t *Tree) slicePiece(parent Piece, from, to int) Piece {
	buf := t.store.Slice(parent.BufferID, parent.Start, parent.Length)
	return Piece{
		BufferID:   parent.BufferID,
		Start:      parent.Start + from,
		Length:     to - from,
		LineStarts: ComputeLineStarts(buf, from, to),
	}
}

// --- deletion --------------------------------------------------------

// DeleteRange removes [start, end) from the document, splitting the
// boundary pieces as needed.
func (t *Tree) DeleteRange(start, end int) {
	if start >= end {
		return
	}

	nStart := t.FindByOffset(start)
	if !nStart.Valid() {
		return
	}
	var leftSplit *node
	if nStart.n.documentStart < start {
		n := nStart.n
		splitPoint := start - n.documentStart
		leftPiece := t.slicePiece(n.piece, 0, splitPoint)
		rightPiece := t.slicePiece(n.piece, splitPoint, n.piece.Length)
		docStart := n.documentStart
		t.deleteNode(n)
		left := newNode(leftPiece, docStart)
		t.insertNode(left)
		t.insertNode(newNode(rightPiece, start))
		leftSplit = left
	}

	nEnd := t.FindByOffset(end)
	if nEnd.Valid() && nEnd.n.documentStart < end && nEnd.n.documentStart+nEnd.n.piece.Length > end {
		n := nEnd.n
		splitPoint := end - n.documentStart
		leftPiece := t.slicePiece(n.piece, 0, splitPoint)
		rightPiece := t.slicePiece(n.piece, splitPoint, n.piece.Length)
		docStart := n.documentStart
		t.deleteNode(n)
		t.insertNode(newNode(leftPiece, docStart))
		t.insertNode(newNode(rightPiece, end))
	}

	newStart := start
	if leftSplit != nil {
		newStart = leftSplit.documentStart + leftSplit.piece.Length
	}

	var toDelete []*node
	var firstToUpdate *node
	cur := t.FindByOffset(start).n
	for cur != nil && cur.documentStart < end {
		next := successor(cur)
		if cur.documentStart+cur.piece.Length > start {
			toDelete = append(toDelete, cur)
			firstToUpdate = next
		}
		cur = next
	}
	for _, n := range toDelete {
		t.deleteNode(n)
	}

	t.shiftDocumentStartsFrom(firstToUpdate, newStart)
}

// deleteNode removes n from the tree, maintaining red-black
// properties, and debits its length/line-break contribution from the
// tree-level totals. Split-and-replace call sites (InsertPiece,
// DeleteRange) delete a node then reinsert one or two pieces whose
// combined length and line-break count equal the original, so the
// debit here and the credits in the following insertNode calls net
// to zero for those pieces, and to the actual shrink for a net
// deletion.
func (t *Tree) deleteNode(n *node) {
	if n == nil {
		return
	}
	t.length -= n.piece.Length
	t.lfCnt -= lfCount(n)

	y := n
	yWasRed := isRed(y)
	var x, xParent *node

	switch {
	case n.left == nil:
		x = n.right
		xParent = n.parent
		t.transplant(n, n.right)
	case n.right == nil:
		x = n.left
		xParent = n.parent
		t.transplant(n, n.left)
	default:
		y = minimum(n.right)
		yWasRed = isRed(y)
		x = y.right
		if y.parent == n {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = n.right
			y.right.parent = y
		}
		t.transplant(n, y)
		y.left = n.left
		y.left.parent = y
		y.clr = n.clr
	}

	if !yWasRed {
		t.fixDelete(x, xParent)
	}
	t.updateAugmentedUpward(xParent)
}

func (t *Tree) transplant(u, v *node) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// --- rebalancing ------------------------------------------------------

func (t *Tree) leftRotate(x *node) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	t.updateAugmented(x)
	t.updateAugmented(y)
}

func (t *Tree) rightRotate(y *node) {
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.right:
		y.parent.right = x
	default:
		y.parent.left = x
	}
	x.right = y
	y.parent = x
	t.updateAugmented(y)
	t.updateAugmented(x)
}

func (t *Tree) updateAugmented(n *node) {
	if n == nil {
		return
	}
	n.leftSubtreeLength = subtreeLength(n.left)
	n.leftSubtreeLFCount = subtreeLFCount(n.left)
}

func (t *Tree) updateAugmentedUpward(n *node) {
	for n != nil {
		t.updateAugmented(n)
		n = n.parent
	}
}

func (t *Tree) fixInsert(z *node) {
	for z.parent != nil && isRed(z.parent) {
		gp := z.parent.parent
		if z.parent == gp.left {
			y := gp.right
			if isRed(y) {
				z.parent.clr = black
				y.clr = black
				gp.clr = red
				z = gp
				continue
			}
			if z == z.parent.right {
				z = z.parent
				t.leftRotate(z)
			}
			z.parent.clr = black
			z.parent.parent.clr = red
			t.rightRotate(z.parent.parent)
		} else {
			y := gp.left
			if isRed(y) {
				z.parent.clr = black
				y.clr = black
				gp.clr = red
				z = gp
				continue
			}
			if z == z.parent.left {
				z = z.parent
				t.rightRotate(z)
			}
			z.parent.clr = black
			z.parent.parent.clr = red
			t.leftRotate(z.parent.parent)
		}
	}
	t.root.clr = black
}

func (t *Tree) fixDelete(x, xParent *node) {
	for x != t.root && !isRed(x) {
		if xParent == nil {
			break
		}
		if x == xParent.left {
			w := xParent.right
			if isRed(w) {
				w.clr = black
				xParent.clr = red
				t.leftRotate(xParent)
				w = xParent.right
			}
			if w == nil || (!isRed(w.left) && !isRed(w.right)) {
				if w != nil {
					w.clr = red
				}
				x = xParent
				xParent = x.parent
			} else {
				if w == nil || !isRed(w.right) {
					if w != nil && w.left != nil {
						w.left.clr = black
					}
					if w != nil {
						w.clr = red
					}
					if w != nil {
						t.rightRotate(w)
					}
					w = xParent.right
				}
				if w != nil {
					w.clr = xParent.clr
				}
				xParent.clr = black
				if w != nil && w.right != nil {
					w.right.clr = black
				}
				t.leftRotate(xParent)
				x = t.root
				xParent = nil
			}
		} else {
			w := xParent.left
			if isRed(w) {
				w.clr = black
				xParent.clr = red
				t.rightRotate(xParent)
				w = xParent.left
			}
			if w == nil || (!isRed(w.right) && !isRed(w.left)) {
				if w != nil {
					w.clr = red
				}
				x = xParent
				xParent = x.parent
			} else {
				if w == nil || !isRed(w.left) {
					if w != nil && w.right != nil {
						w.right.clr = black
					}
					if w != nil {
						w.clr = red
					}
					if w != nil {
						t.leftRotate(w)
					}
					w = xParent.left
				}
				if w != nil {
					w.clr = xParent.clr
				}
				xParent.clr = black
				if w != nil && w.left != nil {
					w.left.clr = black
				}
				t.rightRotate(xParent)
				x = t.root
				xParent = nil
			}
		}
	}
	if x != nil {
		x.clr = black
	}
}
