package piece

// Iter is a restartable, finite in-order iterator over a Tree's
// pieces. It is the building block text(), text_range() and the
// search sliding window scan are built on.
type Iter struct {
	cur Ref
}

// Iter returns an iterator starting at the first piece.
func (t *Tree) Iter() *Iter { return &Iter{cur: t.First()} }

// IterFrom returns an iterator starting at the node containing offset.
func (t *Tree) IterFrom(offset int) *Iter {
	if offset >= t.length {
		return &Iter{}
	}
	return &Iter{cur: t.FindByOffset(offset)}
}

// Next returns the current node and advances, or returns an invalid
// Ref once the iterator is exhausted.
func (it *Iter) Next() Ref {
	r := it.cur
	if r.Valid() {
		it.cur = r.Successor()
	}
	return r
}
