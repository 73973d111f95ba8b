package memory

import (
	"sync"

	"github.com/popsorte/draw-backend/internal/models"
	"github.com/popsorte/draw-backend/internal/repositories"
)

// Compile-time check
var _ repositories.EntryRepository = (*EntryRepository)(nil)

// EntryRepository is the in-memory snapshot store for sheet-backed
// entries. Snapshots are immutable once swapped in, so readers may hold
// a returned slice across a whole winner computation without locking.
type EntryRepository struct {
	mu      sync.RWMutex
	entries []models.Entry
}

// NewEntryRepository creates an empty EntryRepository.
func NewEntryRepository() *EntryRepository {
	return &EntryRepository{}
}

// ReplaceAll swaps in a fresh snapshot.
func (r *EntryRepository) ReplaceAll(entries []models.Entry) {
	snapshot := make([]models.Entry, len(entries))
	copy(snapshot, entries)
	r.mu.Lock()
	r.entries = snapshot
	r.mu.Unlock()
}

// FindAll returns the current snapshot. The returned slice is never
// mutated after the swap; callers must not modify it.
func (r *EntryRepository) FindAll() []models.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries
}

// FindByPlatform returns the entries of one platform, in sheet order.
func (r *EntryRepository) FindByPlatform(platform string) []models.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Entry
	for _, e := range r.entries {
		if e.Platform == platform {
			out = append(out, e)
		}
	}
	return out
}

// FindByGameID returns the most recent entry submitted under a game ID.
func (r *EntryRepository) FindByGameID(gameID string) (models.Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].GameID == gameID {
			return r.entries[i], true
		}
	}
	return models.Entry{}, false
}

// Count returns the snapshot size.
func (r *EntryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
