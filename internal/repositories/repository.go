package repositories

import (
	"github.com/popsorte/draw-backend/internal/models"
)

// EntryRepository holds the current snapshot of sheet-backed entries.
// ReplaceAll swaps the whole snapshot atomically; readers always see a
// consistent collection, never a partially refreshed one.
type EntryRepository interface {
	ReplaceAll(entries []models.Entry)
	FindAll() []models.Entry
	FindByPlatform(platform string) []models.Entry
	FindByGameID(gameID string) (models.Entry, bool)
	Count() int
}

// ResultRepository holds the current snapshot of published winning
// results, looked up by (concurso, drawDate).
type ResultRepository interface {
	ReplaceAll(results []models.WinningResult)
	FindByKey(key models.ResultKey) (models.WinningResult, bool)
	FindRecent(limit int) []models.WinningResult
	Count() int
}
