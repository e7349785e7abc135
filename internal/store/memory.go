// internal/store/memory.go
//
// In-memory session state for the daily game.
//
// Characteristics:
//   - Stores *game.Record keyed by token, then by YYYYMMDD date key.
//   - The top-level RWMutex guards map structure only; gameplay mutation is
//     serialized by each record's own lock, so one session's guess never
//     blocks another session's.
//   - State is lost when the process restarts.
//   - Sweep drops date keys older than a cutoff so the maps do not grow
//     without bound across days.

package store

import (
	"sync"

	"github.com/robalobadob/wordtide/internal/game"
)

// Memory is the map-backed record store.
type Memory struct {
	mu   sync.RWMutex
	recs map[string]map[string]*game.Record // token → dateKey → record
}

// NewMemory constructs an empty store.
func NewMemory() *Memory {
	return &Memory{recs: make(map[string]map[string]*game.Record)}
}

// GetOrCreate returns the record for (token, dateKey), creating an empty one
// on first access. Repeated calls return the same pointer, which is what
// lets callers lock the record itself.
func (m *Memory) GetOrCreate(token, dateKey string) *game.Record {
	m.mu.RLock()
	if days, ok := m.recs[token]; ok {
		if rec, ok := days[dateKey]; ok {
			m.mu.RUnlock()
			return rec
		}
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	days, ok := m.recs[token]
	if !ok {
		days = make(map[string]*game.Record)
		m.recs[token] = days
	}
	rec, ok := days[dateKey]
	if !ok {
		rec = &game.Record{}
		days[dateKey] = rec
	}
	return rec
}

// Sweep deletes records with date keys strictly older than cutoff and prunes
// token entries left empty. YYYYMMDD keys compare lexically in date order.
// Returns the number of records removed.
func (m *Memory) Sweep(cutoff string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for token, days := range m.recs {
		for dateKey := range days {
			if dateKey < cutoff {
				delete(days, dateKey)
				removed++
			}
		}
		if len(days) == 0 {
			delete(m.recs, token)
		}
	}
	return removed
}

var _ game.RecordStore = (*Memory)(nil)
