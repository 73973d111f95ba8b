package drawcal

import (
	"fmt"
	"time"

	"github.com/popsorte/draw-backend/internal/models"
)

// CurrentSchedule resolves the draw whose registration window is
// relevant at now. Today's draw stays the target until its own cutoff
// instant passes — not until midnight — so the resolution is two-phase:
// a valid, still-open today wins; otherwise the next valid day does.
func CurrentSchedule(now time.Time) (models.DrawSchedule, error) {
	today := CivilDate(now)
	if IsValidDrawDay(today) {
		sched := BuildSchedule(today)
		if !now.After(sched.Cutoff) {
			return sched, nil
		}
	}
	next, err := NextValidDrawDate(today.AddDate(0, 0, 1))
	if err != nil {
		return models.DrawSchedule{}, fmt.Errorf("resolving current draw schedule: %w", err)
	}
	return BuildSchedule(next), nil
}
