package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/popsorte/draw-backend/internal/models"
	"github.com/popsorte/draw-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure ResultServiceImpl implements ResultService
var _ ResultService = (*ResultServiceImpl)(nil)

const defaultRecentResults = 10

// ResultServiceImpl polls the published sheets and keeps the in-memory
// snapshots current. A fetch whose fingerprint matches the previous one
// leaves the snapshot untouched, so readers keep their memoized
// derivations.
type ResultServiceImpl struct {
	source     SheetSource
	entryRepo  repositories.EntryRepository
	resultRepo repositories.ResultRepository

	mu         sync.Mutex
	entriesFP  string
	resultsFP  string
}

// NewResultService creates a ResultServiceImpl.
func NewResultService(source SheetSource, entryRepo repositories.EntryRepository, resultRepo repositories.ResultRepository) *ResultServiceImpl {
	return &ResultServiceImpl{
		source:     source,
		entryRepo:  entryRepo,
		resultRepo: resultRepo,
	}
}

// Refresh fetches both sheets and swaps the snapshots whose content
// changed. Zero-row sheets are a valid state, not an error.
func (s *ResultServiceImpl) Refresh(ctx context.Context) (RefreshStats, error) {
	entries, entryStats, err := s.source.FetchEntries(ctx)
	if err != nil {
		slog.Error("Failed to fetch entries sheet", "error", err)
		return RefreshStats{}, fmt.Errorf("refreshing entries: %w", err)
	}
	results, resultStats, err := s.source.FetchResults(ctx)
	if err != nil {
		slog.Error("Failed to fetch results sheet", "error", err)
		return RefreshStats{}, fmt.Errorf("refreshing results: %w", err)
	}

	stats := RefreshStats{
		Entries:     len(entries),
		Results:     len(results),
		SkippedRows: entryStats.Skipped + resultStats.Skipped,
	}

	entriesFP := entriesFingerprint(entries)
	resultsFP := resultsFingerprint(results)

	s.mu.Lock()
	if entriesFP != s.entriesFP {
		s.entryRepo.ReplaceAll(entries)
		s.entriesFP = entriesFP
		stats.EntriesChanged = true
	}
	if resultsFP != s.resultsFP {
		s.resultRepo.ReplaceAll(results)
		s.resultsFP = resultsFP
		stats.ResultsChanged = true
	}
	s.mu.Unlock()

	slog.Info("Sheet refresh complete",
		"entries", stats.Entries,
		"results", stats.Results,
		"entriesChanged", stats.EntriesChanged,
		"resultsChanged", stats.ResultsChanged,
		"skippedRows", stats.SkippedRows)
	return stats, nil
}

// RecentResults returns the latest published results, newest first.
func (s *ResultServiceImpl) RecentResults(limit int) []models.WinningResult {
	if limit <= 0 {
		limit = defaultRecentResults
	}
	return s.resultRepo.FindRecent(limit)
}
