package piecetree

// FindAll returns every match of query at offset >= start, in
// ascending order, capped at search.MatchesCap.
func (b *Buffer) FindAll(query string, start int, opts SearchOptions, max int) ([]Match, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.se.FindAll(query, start, opts, max)
}

// FindNext returns the first match of query at offset >= start.
func (b *Buffer) FindNext(query string, start int, opts SearchOptions) (Match, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.se.FindNext(query, start, opts)
}

// FindPrevious returns the last match of query whose end offset is
// < end.
func (b *Buffer) FindPrevious(query string, end int, opts SearchOptions) (Match, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.se.FindPrevious(query, end, opts)
}
