package piecetree

// GetEOL returns the document's current EOL policy.
func (b *Buffer) GetEOL() EOLPolicy {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.EOL()
}

// SetEOL changes the policy used for future ingress normalization and
// egress via TextWithEOL(GetEOL()). It does not rewrite existing
// content.
func (b *Buffer) SetEOL(p EOLPolicy) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc.SetEOL(p)
}

// IsNormalizeEOL reports whether ingress normalization is enabled.
func (b *Buffer) IsNormalizeEOL() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.IsNormalizeEOL()
}

// SetNormalizeEOL toggles ingress normalization for future edits.
func (b *Buffer) SetNormalizeEOL(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc.SetNormalizeEOL(v)
}
