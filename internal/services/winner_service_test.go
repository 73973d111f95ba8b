package services

import (
	"testing"
	"time"

	"github.com/popsorte/draw-backend/internal/drawcal"
	"github.com/popsorte/draw-backend/internal/models"
	"github.com/popsorte/draw-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func winnerFixtures() ([]models.Entry, []models.WinningResult) {
	drawDate := time.Date(2024, 3, 14, 0, 0, 0, 0, drawcal.BRT)
	entries := []models.Entry{
		{Platform: "POPN1", GameID: "1111111111", Numbers: []int{10, 20, 30, 40, 50}, DrawDate: drawDate, Concurso: "6412", Status: models.StatusValidated, Validity: models.ValidityValid},
		{Platform: "POPN1", GameID: "2222222222", Numbers: []int{10, 20, 60, 70, 79}, DrawDate: drawDate, Concurso: "6412", Status: models.StatusValidated, Validity: models.ValidityValid},
	}
	results := []models.WinningResult{
		{Concurso: "6412", DrawDate: drawDate, Numbers: []int{10, 20, 30, 40, 50}},
	}
	return entries, results
}

func TestGetWinnersMemoizesBySnapshot(t *testing.T) {
	entries, results := winnerFixtures()
	entryRepo := memory.NewEntryRepository()
	resultRepo := memory.NewResultRepository()
	entryRepo.ReplaceAll(entries)
	resultRepo.ReplaceAll(results)

	svc := NewWinnerService(entryRepo, resultRepo)

	first := svc.GetWinners()
	require.Len(t, first, 1)
	assert.Equal(t, "1111111111", first[0].Entry.GameID)
	assert.Equal(t, 5, first[0].Outcome.Matches)

	// Same snapshots: the cached slice itself comes back.
	second := svc.GetWinners()
	assert.Same(t, &first[0], &second[0])

	// New snapshot content invalidates the memo.
	entryRepo.ReplaceAll(entries[:1])
	third := svc.GetWinners()
	require.Len(t, third, 1)
	assert.NotSame(t, &first[0], &third[0])
}

func TestGetWinnersMemoizesEmptyOutcome(t *testing.T) {
	entryRepo := memory.NewEntryRepository()
	resultRepo := memory.NewResultRepository()
	svc := NewWinnerService(entryRepo, resultRepo)

	assert.Empty(t, svc.GetWinners())
	// The empty outcome must also be cached, not recomputed as a miss.
	assert.Empty(t, svc.GetWinners())
}

func TestEntryStanding(t *testing.T) {
	entries, results := winnerFixtures()
	entryRepo := memory.NewEntryRepository()
	resultRepo := memory.NewResultRepository()
	entryRepo.ReplaceAll(entries)
	resultRepo.ReplaceAll(results)

	svc := NewWinnerService(entryRepo, resultRepo)

	entry, outcome, ok := svc.EntryStanding("2222222222")
	require.True(t, ok)
	assert.Equal(t, "2222222222", entry.GameID)
	assert.True(t, outcome.Validated)
	assert.Equal(t, 2, outcome.Matches)
	assert.Equal(t, models.TierDuque, outcome.Tier)

	_, _, ok = svc.EntryStanding("9999999999")
	assert.False(t, ok)
}
