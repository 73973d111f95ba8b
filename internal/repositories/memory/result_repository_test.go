package memory

import (
	"testing"
	"time"

	"github.com/popsorte/draw-backend/internal/drawcal"
	"github.com/popsorte/draw-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoResult(concurso string, day int) models.WinningResult {
	return models.WinningResult{
		Concurso: concurso,
		DrawDate: time.Date(2024, 3, day, 0, 0, 0, 0, drawcal.BRT),
		Numbers:  []int{1, 2, 3, 4, 5},
	}
}

func TestResultRepositoryLookup(t *testing.T) {
	repo := NewResultRepository()
	repo.ReplaceAll([]models.WinningResult{repoResult("6410", 12), repoResult("6411", 13)})

	res, ok := repo.FindByKey(models.ResultKey{Concurso: "6411", DrawDate: "2024-03-13"})
	require.True(t, ok)
	assert.Equal(t, "6411", res.Concurso)

	_, ok = repo.FindByKey(models.ResultKey{Concurso: "6411", DrawDate: "2024-03-12"})
	assert.False(t, ok)
}

func TestResultRepositoryFindRecent(t *testing.T) {
	repo := NewResultRepository()
	repo.ReplaceAll([]models.WinningResult{
		repoResult("6410", 12),
		repoResult("6412", 14),
		repoResult("6411", 13),
	})

	recent := repo.FindRecent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "6412", recent[0].Concurso)
	assert.Equal(t, "6411", recent[1].Concurso)

	// No limit returns everything, still newest first.
	assert.Len(t, repo.FindRecent(0), 3)
}

func TestResultRepositoryReplaceAllSwapsIndex(t *testing.T) {
	repo := NewResultRepository()
	repo.ReplaceAll([]models.WinningResult{repoResult("6410", 12)})
	repo.ReplaceAll([]models.WinningResult{repoResult("6411", 13)})

	_, ok := repo.FindByKey(models.ResultKey{Concurso: "6410", DrawDate: "2024-03-12"})
	assert.False(t, ok)
	assert.Equal(t, 1, repo.Count())
}

func TestEntryRepositoryFindByGameID(t *testing.T) {
	repo := NewEntryRepository()
	repo.ReplaceAll([]models.Entry{
		{GameID: "1234567890", Concurso: "6410"},
		{GameID: "1234567890", Concurso: "6411"},
	})

	// The most recent entry for the game ID wins.
	entry, ok := repo.FindByGameID("1234567890")
	require.True(t, ok)
	assert.Equal(t, "6411", entry.Concurso)

	_, ok = repo.FindByGameID("0000000000")
	assert.False(t, ok)
}
