package winners

import (
	"sort"
	"strings"

	"github.com/popsorte/draw-backend/internal/models"
)

// groupKey partitions entries into prize pools. Platforms are
// financially independent, so a pool never spans platforms even when
// concurso and draw date coincide.
type groupKey struct {
	platform string
	concurso string
	drawDate string
}

// GetWinners determines the winners among the given entries using the
// published results. Within each platform+concurso+date pool only the
// single highest match level wins; every validated entry at that level
// shares the pool, with no count limit and no tie-break.
func GetWinners(entries []models.Entry, results ResultLookup) []models.Winner {
	groups := make(map[groupKey][]models.Entry)
	for _, entry := range entries {
		// Entries without an accepted status are excluded outright,
		// before grouping.
		if !models.StatusAccepted(entry.Status) {
			continue
		}
		key := groupKey{
			platform: strings.TrimSpace(entry.Platform),
			concurso: strings.TrimSpace(entry.Concurso),
			drawDate: models.DateKey(entry.DrawDate),
		}
		groups[key] = append(groups[key], entry)
	}

	var winners []models.Winner
	for _, group := range groups {
		outcomes := make([]models.ValidationOutcome, len(group))
		best := 0
		for i, entry := range group {
			outcomes[i] = ValidateEntry(entry, results)
			if outcomes[i].Validated && outcomes[i].Matches > best {
				best = outcomes[i].Matches
			}
		}
		// A pool whose best validated entry matched nothing produces no
		// winners at all.
		if best == 0 {
			continue
		}
		for i, entry := range group {
			if outcomes[i].Validated && outcomes[i].Matches == best {
				winners = append(winners, models.Winner{
					Entry:        entry,
					Outcome:      outcomes[i],
					WinningLevel: best,
				})
			}
		}
	}

	sort.SliceStable(winners, func(i, j int) bool {
		a, b := winners[i], winners[j]
		if a.Outcome.Matches != b.Outcome.Matches {
			return a.Outcome.Matches > b.Outcome.Matches
		}
		if a.Entry.Concurso != b.Entry.Concurso {
			return a.Entry.Concurso < b.Entry.Concurso
		}
		if a.Entry.Platform != b.Entry.Platform {
			return a.Entry.Platform < b.Entry.Platform
		}
		return a.Entry.GameID < b.Entry.GameID
	})
	return winners
}
