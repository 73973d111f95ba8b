package services

import (
	"testing"
	"time"

	"github.com/popsorte/draw-backend/internal/drawcal"
	"github.com/popsorte/draw-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleForDate(t *testing.T) {
	svc := NewDrawService(nil)

	info, err := svc.ScheduleForDate(time.Date(2024, 3, 18, 0, 0, 0, 0, drawcal.BRT))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-18", models.DateKey(info.Schedule.DrawDate))
	assert.Equal(t, 6415, info.Concurso)
}

func TestScheduleForDateFromParsedString(t *testing.T) {
	// Date strings from the HTTP boundary are parsed in the draw
	// calendar's zone. Monday 2024-03-18 must resolve to Monday's draw,
	// not slide back onto Sunday.
	date, err := time.ParseInLocation("2006-01-02", "2024-03-18", drawcal.BRT)
	require.NoError(t, err)

	svc := NewDrawService(nil)
	info, err := svc.ScheduleForDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, info.Schedule.DrawDate.Weekday())
	assert.Equal(t, "2024-03-18", models.DateKey(info.Schedule.DrawDate))
}

func TestScheduleForDateRejectsNonDrawDays(t *testing.T) {
	svc := NewDrawService(nil)

	_, err := svc.ScheduleForDate(time.Date(2024, 3, 17, 0, 0, 0, 0, drawcal.BRT))
	assert.ErrorIs(t, err, ErrNotADrawDay)

	_, err = svc.ScheduleForDate(time.Date(2024, 12, 25, 0, 0, 0, 0, drawcal.BRT))
	assert.ErrorIs(t, err, ErrNotADrawDay)
}
