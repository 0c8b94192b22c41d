package snapshot

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/itsakc-me/piecetree-go/internal/buffer"
)

// ErrNotFound is returned when a snapshot lookup by ID or name fails.
var ErrNotFound = errors.New("snapshot not found")

// ID uniquely identifies a named snapshot.
type ID uint64

var idCounter uint64

// NewID generates a new unique snapshot ID.
func NewID() ID {
	return ID(atomic.AddUint64(&idCounter, 1))
}

// Snapshot is an immutable, named checkpoint of a document's full
// text, EOL policy, and the revision it was taken at.
type Snapshot struct {
	ID        ID
	Name      string
	Timestamp time.Time
	Revision  buffer.RevisionID

	text string
	eol  buffer.EOLPolicy
}

// New captures doc's current state as a Snapshot.
func New(name string, doc *buffer.Document) *Snapshot {
	return &Snapshot{
		ID:        NewID(),
		Name:      name,
		Timestamp: time.Now(),
		Revision:  doc.Revision(),
		text:      doc.Text(),
		eol:       doc.EOL(),
	}
}

// Text returns the captured document text.
func (s *Snapshot) Text() string { return s.text }

// EOL returns the captured EOL policy.
func (s *Snapshot) EOL() buffer.EOLPolicy { return s.eol }

// Len returns the captured byte length.
func (s *Snapshot) Len() int { return len(s.text) }

// Age reports how long ago this snapshot was taken.
func (s *Snapshot) Age() time.Duration { return time.Since(s.Timestamp) }

// Restore re-seeds doc from this snapshot's captured text and EOL
// policy, replacing doc's current content entirely.
func (s *Snapshot) Restore(doc *buffer.Document) error {
	return doc.RestoreFrom(s.text, s.eol)
}

// Manager manages named snapshots. All operations are thread-safe.
type Manager struct {
	mu        sync.RWMutex
	snapshots map[ID]*Snapshot
	byName    map[string]*Snapshot
}

// NewManager returns an empty snapshot Manager.
func NewManager() *Manager {
	return &Manager{
		snapshots: make(map[ID]*Snapshot),
		byName:    make(map[string]*Snapshot),
	}
}

// Create captures doc's current state under name, replacing any
// existing snapshot with that name.
func (m *Manager) Create(name string, doc *buffer.Document) ID {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.byName[name]; ok {
		delete(m.snapshots, existing.ID)
	}

	snap := New(name, doc)
	m.snapshots[snap.ID] = snap
	if name != "" {
		m.byName[name] = snap
	}
	return snap.ID
}

func (m *Manager) Get(id ID) (*Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.snapshots[id]
	return snap, ok
}

func (m *Manager) GetByName(name string) (*Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.byName[name]
	return snap, ok
}

func (m *Manager) Delete(id ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if snap, ok := m.snapshots[id]; ok {
		if snap.Name != "" {
			delete(m.byName, snap.Name)
		}
		delete(m.snapshots, id)
	}
}

// List returns all snapshots, oldest first.
func (m *Manager) List() []*Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Snapshot, 0, len(m.snapshots))
	for _, snap := range m.snapshots {
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.snapshots)
}

func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots = make(map[ID]*Snapshot)
	m.byName = make(map[string]*Snapshot)
}

// PruneKeepN removes the oldest snapshots, keeping only the n most
// recent, and reports how many were removed.
func (m *Manager) PruneKeepN(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.snapshots) <= n {
		return 0
	}
	ordered := make([]*Snapshot, 0, len(m.snapshots))
	for _, snap := range m.snapshots {
		ordered = append(ordered, snap)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Timestamp.After(ordered[j].Timestamp) })

	removed := 0
	for i := n; i < len(ordered); i++ {
		snap := ordered[i]
		if snap.Name != "" {
			delete(m.byName, snap.Name)
		}
		delete(m.snapshots, snap.ID)
		removed++
	}
	return removed
}
