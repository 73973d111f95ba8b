package drawcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, BRT)
}

func TestCurrentScheduleCutoffBoundary(t *testing.T) {
	// 2024-03-14 is a Thursday; the draw is at 20:00, cutoff 19:59:59.
	t.Run("one second before cutoff keeps today", func(t *testing.T) {
		sched, err := CurrentSchedule(at(2024, time.March, 14, 19, 59, 58))
		require.NoError(t, err)
		assert.Equal(t, civil(2024, time.March, 14), sched.DrawDate)
	})

	t.Run("at cutoff keeps today", func(t *testing.T) {
		sched, err := CurrentSchedule(at(2024, time.March, 14, 19, 59, 59))
		require.NoError(t, err)
		assert.Equal(t, civil(2024, time.March, 14), sched.DrawDate)
	})

	t.Run("one second after cutoff moves to the next valid day", func(t *testing.T) {
		sched, err := CurrentSchedule(at(2024, time.March, 14, 20, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, civil(2024, time.March, 15), sched.DrawDate)
	})
}

func TestCurrentScheduleSkipsSunday(t *testing.T) {
	// Saturday after cutoff jumps past Sunday to Monday.
	sched, err := CurrentSchedule(at(2024, time.March, 16, 20, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, civil(2024, time.March, 18), sched.DrawDate)

	// Any instant on Sunday targets Monday.
	sched, err = CurrentSchedule(at(2024, time.March, 17, 9, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, civil(2024, time.March, 18), sched.DrawDate)
}

func TestCurrentScheduleHolidayClosure(t *testing.T) {
	// Christmas Day has no draw; the next valid day is the 26th.
	sched, err := CurrentSchedule(at(2024, time.December, 25, 12, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, civil(2024, time.December, 26), sched.DrawDate)

	// Christmas Eve draws early: open at 16:59:59, closed at 17:00:00,
	// and the post-cutoff target skips the closed 25th.
	sched, err = CurrentSchedule(at(2024, time.December, 24, 16, 59, 59))
	require.NoError(t, err)
	assert.Equal(t, civil(2024, time.December, 24), sched.DrawDate)
	assert.Equal(t, 17, sched.DrawHour)

	sched, err = CurrentSchedule(at(2024, time.December, 24, 17, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, civil(2024, time.December, 26), sched.DrawDate)
}

func TestCurrentScheduleHonorsCallerZone(t *testing.T) {
	// 23:30 UTC on the 14th is 20:30 BRT, past cutoff: the civil day and
	// the cutoff comparison both follow the fixed BRT calendar.
	now := time.Date(2024, time.March, 14, 23, 30, 0, 0, time.UTC)
	sched, err := CurrentSchedule(now)
	require.NoError(t, err)
	assert.Equal(t, civil(2024, time.March, 15), sched.DrawDate)
}
