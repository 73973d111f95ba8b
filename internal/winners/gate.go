package winners

import (
	"fmt"
	"strings"

	"github.com/popsorte/draw-backend/internal/models"
)

// ResultLookup resolves the published winning numbers for a contest.
// A miss is a normal outcome, never an error.
type ResultLookup interface {
	Find(key models.ResultKey) (models.WinningResult, bool)
}

// ResultLookupFunc adapts a plain function to ResultLookup.
type ResultLookupFunc func(models.ResultKey) (models.WinningResult, bool)

// Find calls f.
func (f ResultLookupFunc) Find(key models.ResultKey) (models.WinningResult, bool) {
	return f(key)
}

// ValidateEntry runs the pre-checks an entry must pass before winner
// consideration, then matches it against the published numbers.
//
// The recharge screening verdict (Validity), when present, is
// authoritative and short-circuits the manual status path: a hand-set
// VALID status must not bypass it. Only when no verdict exists does the
// sheet status decide.
func ValidateEntry(entry models.Entry, results ResultLookup) models.ValidationOutcome {
	if validity := strings.TrimSpace(entry.Validity); validity != "" {
		if validity == models.ValidityInvalid {
			reason := entry.InvalidReason
			if reason == "" {
				reason = "recharge validation failed"
			}
			return models.ValidationOutcome{
				Gate:   models.GateRechargeInvalid,
				Reason: reason,
				Tier:   models.TierNoPrize,
			}
		}
		if validity != models.ValidityValid {
			return models.ValidationOutcome{
				Gate:   models.GateValidityUnknown,
				Reason: fmt.Sprintf("unrecognized validity value %q", validity),
				Tier:   models.TierNoPrize,
			}
		}
	} else {
		if models.StatusRejected(entry.Status) {
			return models.ValidationOutcome{
				Gate:   models.GateStatusInvalid,
				Reason: "entry marked invalid",
				Tier:   models.TierNoPrize,
			}
		}
		if !models.StatusAccepted(entry.Status) {
			return models.ValidationOutcome{
				Gate:   models.GateStatusNotValidated,
				Reason: fmt.Sprintf("entry status %q is not validated", entry.Status),
				Tier:   models.TierNoPrize,
			}
		}
	}

	result, ok := results.Find(models.ResultKey{
		Concurso: strings.TrimSpace(entry.Concurso),
		DrawDate: models.DateKey(entry.DrawDate),
	})
	if !ok {
		return models.ValidationOutcome{
			Reason: fmt.Sprintf("no winning numbers published for concurso %s", entry.Concurso),
			Tier:   models.TierNoPrize,
		}
	}

	matches, matched := MatchNumbers(entry.Numbers, result.Numbers)
	return models.ValidationOutcome{
		Validated:      true,
		Matches:        matches,
		MatchedNumbers: matched,
		WinningNumbers: result.Numbers,
		Tier:           TierForMatches(matches),
	}
}
