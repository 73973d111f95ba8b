package memory

import (
	"sort"
	"sync"

	"github.com/popsorte/draw-backend/internal/models"
	"github.com/popsorte/draw-backend/internal/repositories"
)

// Compile-time check
var _ repositories.ResultRepository = (*ResultRepository)(nil)

// ResultRepository is the in-memory snapshot store for published
// winning results, indexed by (concurso, drawDate).
type ResultRepository struct {
	mu      sync.RWMutex
	results []models.WinningResult
	index   map[models.ResultKey]models.WinningResult
}

// NewResultRepository creates an empty ResultRepository.
func NewResultRepository() *ResultRepository {
	return &ResultRepository{index: make(map[models.ResultKey]models.WinningResult)}
}

// ReplaceAll swaps in a fresh snapshot and rebuilds the lookup index.
func (r *ResultRepository) ReplaceAll(results []models.WinningResult) {
	snapshot := make([]models.WinningResult, len(results))
	copy(snapshot, results)
	index := make(map[models.ResultKey]models.WinningResult, len(snapshot))
	for _, res := range snapshot {
		index[res.Key()] = res
	}
	r.mu.Lock()
	r.results = snapshot
	r.index = index
	r.mu.Unlock()
}

// FindByKey looks up the result for a contest. A miss is a normal
// outcome: the contest may simply not have drawn yet.
func (r *ResultRepository) FindByKey(key models.ResultKey) (models.WinningResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.index[key]
	return res, ok
}

// FindRecent returns up to limit results, most recent draw date first.
func (r *ResultRepository) FindRecent(limit int) []models.WinningResult {
	r.mu.RLock()
	snapshot := r.results
	r.mu.RUnlock()

	recent := make([]models.WinningResult, len(snapshot))
	copy(recent, snapshot)
	sort.SliceStable(recent, func(i, j int) bool {
		if !recent[i].DrawDate.Equal(recent[j].DrawDate) {
			return recent[i].DrawDate.After(recent[j].DrawDate)
		}
		return recent[i].Concurso > recent[j].Concurso
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// Count returns the snapshot size.
func (r *ResultRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.results)
}
