package piece

import "fmt"

// Validate walks the tree and checks every invariant the piece-tree
// relies on: red-black coloring and black-height balance, correct
// documentStart caching, correct augmented aggregates, and non-zero
// piece lengths. It is exercised by property tests rather than called
// from production paths.
func (t *Tree) Validate() error {
	if isRed(t.root) {
		return fmt.Errorf("piece: root is red")
	}
	if _, err := validateNode(t.root, 0); err != nil {
		return err
	}
	total, lf := 0, 0
	for r := t.First(); r.Valid(); r = r.Successor() {
		if r.DocumentStart() != total {
			return fmt.Errorf("piece: node at in-order position has documentStart %d, want %d", r.DocumentStart(), total)
		}
		if r.Piece().Length == 0 {
			return fmt.Errorf("piece: zero-length piece at offset %d", total)
		}
		total += r.Piece().Length
		lf += len(r.Piece().LineStarts)
	}
	if total != t.length {
		return fmt.Errorf("piece: tree length %d does not match summed piece lengths %d", t.length, total)
	}
	if lf != t.lfCnt {
		return fmt.Errorf("piece: tree line-break count %d does not match summed piece line starts %d", t.lfCnt, lf)
	}
	return nil
}

func validateNode(n *node, depth int) (blackHeight int, err error) {
	if n == nil {
		return 1, nil
	}
	if isRed(n) {
		if isRed(n.left) || isRed(n.right) {
			return 0, fmt.Errorf("piece: red node has a red child at depth %d", depth)
		}
	}
	if n.left != nil {
		wantLen := subtreeLength(n.left)
		if n.leftSubtreeLength != wantLen {
			return 0, fmt.Errorf("piece: leftSubtreeLength %d, want %d", n.leftSubtreeLength, wantLen)
		}
		wantLF := subtreeLFCount(n.left)
		if n.leftSubtreeLFCount != wantLF {
			return 0, fmt.Errorf("piece: leftSubtreeLFCount %d, want %d", n.leftSubtreeLFCount, wantLF)
		}
	} else if n.leftSubtreeLength != 0 || n.leftSubtreeLFCount != 0 {
		return 0, fmt.Errorf("piece: leaf-left node has non-zero left aggregates")
	}

	lh, err := validateNode(n.left, depth+1)
	if err != nil {
		return 0, err
	}
	rh, err := validateNode(n.right, depth+1)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("piece: unequal black height at depth %d (%d vs %d)", depth, lh, rh)
	}
	if !isRed(n) {
		lh++
	}
	return lh, nil
}
