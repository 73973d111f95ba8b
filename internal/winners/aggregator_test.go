package winners

import (
	"testing"

	"github.com/popsorte/draw-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aggEntry(platform, gameID string, numbers []int) models.Entry {
	return models.Entry{
		Platform: platform,
		GameID:   gameID,
		Numbers:  numbers,
		DrawDate: testDrawDate,
		Concurso: "6400",
		Status:   models.StatusValidado,
	}
}

func TestGetWinnersHighestTierOnly(t *testing.T) {
	// winning: 10 20 30 40 50
	results := lookupWith(testResult(10, 20, 30, 40, 50))
	entries := []models.Entry{
		aggEntry("POPN1", "1111111111", []int{10, 20, 30, 77, 78}), // 3 matches
		aggEntry("POPN1", "2222222222", []int{10, 20, 30, 40, 78}), // 4 matches
		aggEntry("POPN1", "3333333333", []int{61, 62, 63, 64, 65}), // 0 matches
	}

	winners := GetWinners(entries, results)

	require.Len(t, winners, 1)
	assert.Equal(t, "2222222222", winners[0].Entry.GameID)
	assert.Equal(t, 4, winners[0].WinningLevel)
	assert.Equal(t, models.TierQuadra, winners[0].Outcome.Tier)
}

func TestGetWinnersTiesSharePool(t *testing.T) {
	results := lookupWith(testResult(10, 20, 30, 40, 50))
	entries := []models.Entry{
		aggEntry("POPN1", "1111111111", []int{10, 20, 30, 77, 78}),
		aggEntry("POPN1", "2222222222", []int{10, 20, 40, 77, 78}),
		aggEntry("POPN1", "3333333333", []int{20, 30, 50, 77, 78}),
	}

	winners := GetWinners(entries, results)

	require.Len(t, winners, 3, "every entry at the shared maximum wins")
	for _, w := range winners {
		assert.Equal(t, 3, w.WinningLevel)
	}
}

func TestGetWinnersPlatformsAreIndependentPools(t *testing.T) {
	results := lookupWith(testResult(10, 20, 30, 40, 50))
	entries := []models.Entry{
		aggEntry("POPN1", "1111111111", []int{10, 20, 30, 40, 78}),  // 4 matches on POPN1
		aggEntry("POPLUZ", "2222222222", []int{10, 20, 30, 77, 78}), // 3 matches on POPLUZ
	}

	winners := GetWinners(entries, results)

	// The 4-match POPN1 entry must not suppress the POPLUZ pool.
	require.Len(t, winners, 2)
	assert.Equal(t, "POPN1", winners[0].Entry.Platform)
	assert.Equal(t, 4, winners[0].WinningLevel)
	assert.Equal(t, "POPLUZ", winners[1].Entry.Platform)
	assert.Equal(t, 3, winners[1].WinningLevel)
}

func TestGetWinnersExcludesUnacceptedStatuses(t *testing.T) {
	results := lookupWith(testResult(10, 20, 30, 40, 50))
	perfect := aggEntry("POPN1", "1111111111", []int{10, 20, 30, 40, 50})
	perfect.Status = models.StatusPending

	winners := GetWinners([]models.Entry{perfect}, results)

	assert.Empty(t, winners, "a pending entry never wins regardless of matches")
}

func TestGetWinnersRechargeInvalidOverridesValidStatus(t *testing.T) {
	results := lookupWith(testResult(10, 20, 30, 40, 50))
	flagged := aggEntry("POPN1", "1111111111", []int{10, 20, 30, 40, 50})
	flagged.Status = models.StatusValid
	flagged.Validity = models.ValidityInvalid
	clean := aggEntry("POPN1", "2222222222", []int{10, 20, 30, 77, 78})

	winners := GetWinners([]models.Entry{flagged, clean}, results)

	require.Len(t, winners, 1)
	assert.Equal(t, "2222222222", winners[0].Entry.GameID)
}

func TestGetWinnersZeroMatchGroupProducesNoWinners(t *testing.T) {
	results := lookupWith(testResult(10, 20, 30, 40, 50))
	entries := []models.Entry{
		aggEntry("POPN1", "1111111111", []int{61, 62, 63, 64, 65}),
		aggEntry("POPN1", "2222222222", []int{66, 67, 68, 69, 70}),
	}

	assert.Empty(t, GetWinners(entries, results))
}

func TestGetWinnersMissingResultsProduceNoWinners(t *testing.T) {
	entries := []models.Entry{
		aggEntry("POPN1", "1111111111", []int{10, 20, 30, 40, 50}),
	}

	assert.Empty(t, GetWinners(entries, lookupWith()))
}

func TestGetWinnersEmptyInput(t *testing.T) {
	assert.Empty(t, GetWinners(nil, lookupWith()))
}

func TestGetWinnersSortOrder(t *testing.T) {
	resultA := models.WinningResult{Concurso: "6400", DrawDate: testDrawDate, Numbers: []int{10, 20, 30, 40, 50}}
	resultB := models.WinningResult{Concurso: "6401", DrawDate: testDrawDate.AddDate(0, 0, 1), Numbers: []int{10, 20, 30, 40, 50}}
	results := lookupWith(resultA, resultB)

	laterContest := aggEntry("POPN1", "4444444444", []int{10, 20, 30, 40, 50})
	laterContest.Concurso = "6401"
	laterContest.DrawDate = testDrawDate.AddDate(0, 0, 1)

	// laterContest has 5 matches on concurso 6401; the other two draw on 6400.
	entries := []models.Entry{
		laterContest,
		aggEntry("POPN1", "2222222222", []int{10, 20, 30, 77, 78}),  // 3 matches
		aggEntry("POPLUZ", "1111111111", []int{10, 20, 30, 40, 50}), // 5 matches
	}

	winners := GetWinners(entries, results)

	require.Len(t, winners, 3)
	// matches descending first, then concurso ascending among equals.
	assert.Equal(t, "1111111111", winners[0].Entry.GameID)
	assert.Equal(t, "4444444444", winners[1].Entry.GameID)
	assert.Equal(t, "2222222222", winners[2].Entry.GameID)
}
