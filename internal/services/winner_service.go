package services

import (
	"sync"

	"github.com/popsorte/draw-backend/internal/models"
	"github.com/popsorte/draw-backend/internal/repositories"
	"github.com/popsorte/draw-backend/internal/winners"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure WinnerServiceImpl implements WinnerService
var _ WinnerService = (*WinnerServiceImpl)(nil)

// WinnerServiceImpl runs the pure winner-determination engine over the
// current snapshots and memoizes the last computation by content
// fingerprint. The engine itself stays cache-free.
type WinnerServiceImpl struct {
	entryRepo  repositories.EntryRepository
	resultRepo repositories.ResultRepository

	mu          sync.Mutex
	cachedKey   string
	cachedValid bool
	cached      []models.Winner
}

// NewWinnerService creates a WinnerServiceImpl.
func NewWinnerService(entryRepo repositories.EntryRepository, resultRepo repositories.ResultRepository) *WinnerServiceImpl {
	return &WinnerServiceImpl{
		entryRepo:  entryRepo,
		resultRepo: resultRepo,
	}
}

// GetWinners returns the ordered winner list for the current snapshots,
// reusing the previous computation when neither snapshot changed.
func (s *WinnerServiceImpl) GetWinners() []models.Winner {
	entries := s.entryRepo.FindAll()
	results := s.resultRepo.FindRecent(0)
	key := entriesFingerprint(entries) + "/" + resultsFingerprint(results)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cachedValid && key == s.cachedKey {
		return s.cached
	}

	computed := winners.GetWinners(entries, s.lookup())
	s.cachedKey = key
	s.cachedValid = true
	s.cached = computed
	slog.Info("Winner computation complete", "entries", len(entries), "results", len(results), "winners", len(computed))
	return computed
}

// EntryStanding validates the latest entry submitted under a game ID.
func (s *WinnerServiceImpl) EntryStanding(gameID string) (models.Entry, models.ValidationOutcome, bool) {
	entry, ok := s.entryRepo.FindByGameID(gameID)
	if !ok {
		return models.Entry{}, models.ValidationOutcome{}, false
	}
	return entry, s.ValidateEntry(entry), true
}

// ValidateEntry runs the validation gate against the current results
// snapshot.
func (s *WinnerServiceImpl) ValidateEntry(entry models.Entry) models.ValidationOutcome {
	return winners.ValidateEntry(entry, s.lookup())
}

func (s *WinnerServiceImpl) lookup() winners.ResultLookup {
	return winners.ResultLookupFunc(func(key models.ResultKey) (models.WinningResult, bool) {
		return s.resultRepo.FindByKey(key)
	})
}
