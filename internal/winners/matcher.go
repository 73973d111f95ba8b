package winners

import "github.com/popsorte/draw-backend/internal/models"

// MatchNumbers counts how many chosen numbers appear in the winning set
// and returns the matched subset, preserving the order of chosen.
// Pure set membership; no weighting or partial credit.
func MatchNumbers(chosen, winning []int) (int, []int) {
	set := make(map[int]struct{}, len(winning))
	for _, n := range winning {
		set[n] = struct{}{}
	}
	var matched []int
	for _, n := range chosen {
		if _, ok := set[n]; ok {
			matched = append(matched, n)
		}
	}
	return len(matched), matched
}

// TierForMatches maps a match count onto the fixed prize tier table.
// The mapping is total: anything below two matches is the no-prize tier.
func TierForMatches(matches int) models.PrizeTier {
	switch matches {
	case 5:
		return models.TierQuina
	case 4:
		return models.TierQuadra
	case 3:
		return models.TierTerno
	case 2:
		return models.TierDuque
	default:
		return models.TierNoPrize
	}
}
