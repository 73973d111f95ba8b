package drawcal

import (
	"errors"
	"fmt"
	"time"

	"github.com/popsorte/draw-backend/internal/models"
)

// BRT is the fixed UTC−3 civil calendar used for every scheduling
// decision, regardless of the server's locale. No daylight-saving
// adjustment is ever applied.
var BRT = time.FixedZone("BRT", -3*60*60)

// Contest numbering is anchored to a fixed reference pair: concurso 6350
// drew on 2024-01-02. Every other concurso is derived by counting valid
// draw days between the reference date and the target.
const ReferenceConcurso = 6350

var referenceDate = time.Date(2024, time.January, 2, 0, 0, 0, 0, BRT)

const (
	regularDrawHour = 20
	earlyDrawHour   = 17

	// Defensive bound for forward scans. At most one Sunday and two
	// holiday closures can ever run consecutively, so this never
	// triggers unless the calendar rules themselves are broken.
	maxScanDays = 14
)

// ErrNoValidDrawDate signals a scan that exhausted its range without
// finding a valid draw day. It indicates broken calendar configuration
// and must never be papered over with a guessed date.
var ErrNoValidDrawDate = errors.New("no valid draw date within scan range")

// CivilDate truncates an instant to midnight of its BRT civil day.
func CivilDate(t time.Time) time.Time {
	t = t.In(BRT)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, BRT)
}

// IsNoDrawDay reports whether the lottery is closed on this civil day
// (Christmas and New Year's Day).
func IsNoDrawDay(date time.Time) bool {
	date = date.In(BRT)
	month, day := date.Month(), date.Day()
	return (month == time.December && day == 25) || (month == time.January && day == 1)
}

// IsEarlyDrawDay reports whether the draw happens at the early hour
// (Christmas Eve and New Year's Eve).
func IsEarlyDrawDay(date time.Time) bool {
	date = date.In(BRT)
	month, day := date.Month(), date.Day()
	return month == time.December && (day == 24 || day == 31)
}

// DrawHour returns the civil hour the draw happens on the given day.
func DrawHour(date time.Time) int {
	if IsEarlyDrawDay(date) {
		return earlyDrawHour
	}
	return regularDrawHour
}

// IsValidDrawDay reports whether a draw happens on this civil day.
// Early-draw days are valid draw days, just at a different hour.
func IsValidDrawDay(date time.Time) bool {
	date = date.In(BRT)
	return date.Weekday() != time.Sunday && !IsNoDrawDay(date)
}

// NextValidDrawDate scans forward day by day, inclusive of from, and
// returns the first valid draw day within the scan bound.
func NextValidDrawDate(from time.Time) (time.Time, error) {
	day := CivilDate(from)
	for i := 0; i < maxScanDays; i++ {
		if IsValidDrawDay(day) {
			return day, nil
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, fmt.Errorf("%w: scanned %d days from %s", ErrNoValidDrawDate, maxScanDays, models.DateKey(from))
}

// BuildSchedule returns the registration window for the given civil
// date. It does not check validity; callers pre-validate the date.
func BuildSchedule(date time.Time) models.DrawSchedule {
	day := CivilDate(date)
	hour := DrawHour(day)
	drawTime := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, BRT)
	prev := day.AddDate(0, 0, -1)
	return models.DrawSchedule{
		DrawDate: day,
		DrawHour: hour,
		DrawTime: drawTime,
		Cutoff:   drawTime.Add(-time.Second),
		RegStart: time.Date(prev.Year(), prev.Month(), prev.Day(), 20, 0, 1, 0, BRT),
	}
}

// Concurso returns the contest number for a civil date. The walk counts
// one per valid draw day between the reference date (always excluded)
// and the target (included), moving forward or backward as needed, so
// concurso numbers stay in order-preserving bijection with valid draw
// days on either side of the anchor.
func Concurso(target time.Time) int {
	day := CivilDate(target)
	switch {
	case day.Equal(referenceDate):
		return ReferenceConcurso
	case day.After(referenceDate):
		n := ReferenceConcurso
		for d := referenceDate.AddDate(0, 0, 1); !d.After(day); d = d.AddDate(0, 0, 1) {
			if IsValidDrawDay(d) {
				n++
			}
		}
		return n
	default:
		n := ReferenceConcurso
		for d := referenceDate.AddDate(0, 0, -1); !d.Before(day); d = d.AddDate(0, 0, -1) {
			if IsValidDrawDay(d) {
				n--
			}
		}
		return n
	}
}
