package models

import "time"

// WinningResult holds the drawn numbers published for one contest.
// There is exactly one per (concurso, drawDate) pair.
type WinningResult struct {
	Concurso string    `json:"concurso"`
	DrawDate time.Time `json:"drawDate"`
	Numbers  []int     `json:"winningNumbers"`
}

// ResultKey is the lookup key for a published result.
type ResultKey struct {
	Concurso string
	DrawDate string // civil date, YYYY-MM-DD
}

// Key returns the lookup key for this result.
func (r WinningResult) Key() ResultKey {
	return ResultKey{Concurso: r.Concurso, DrawDate: DateKey(r.DrawDate)}
}

// DateKey formats a civil date the way sheet rows and grouping keys use it.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
