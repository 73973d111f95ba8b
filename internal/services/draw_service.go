package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/popsorte/draw-backend/internal/drawcal"
	"github.com/popsorte/draw-backend/internal/models"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure DrawServiceImpl implements DrawService
var _ DrawService = (*DrawServiceImpl)(nil)

// ErrNotADrawDay is returned when a schedule is requested for a date
// without a draw (Sunday or holiday closure).
var ErrNotADrawDay = errors.New("not a draw day")

// DrawServiceImpl resolves schedules and contest numbers from the fixed
// draw calendar. The clock function is injected so callers can apply
// the server-time correction obtained at the transport boundary.
type DrawServiceImpl struct {
	now func() time.Time
}

// NewDrawService creates a DrawServiceImpl. A nil clock falls back to
// the local wall clock.
func NewDrawService(now func() time.Time) *DrawServiceImpl {
	if now == nil {
		now = time.Now
	}
	return &DrawServiceImpl{now: now}
}

// Now returns the server-corrected current instant.
func (s *DrawServiceImpl) Now() time.Time {
	return s.now()
}

// CurrentSchedule resolves the draw currently open for registration.
func (s *DrawServiceImpl) CurrentSchedule() (ScheduleInfo, error) {
	sched, err := drawcal.CurrentSchedule(s.now())
	if err != nil {
		// Unreachable with an intact calendar; if it fires, the rules
		// or the reference point are broken and no substitute date may
		// be guessed.
		slog.Error("Failed to resolve current draw schedule", "error", err)
		return ScheduleInfo{}, err
	}
	return ScheduleInfo{Schedule: sched, Concurso: drawcal.Concurso(sched.DrawDate)}, nil
}

// ScheduleForDate returns the schedule and concurso of a specific draw day.
func (s *DrawServiceImpl) ScheduleForDate(date time.Time) (ScheduleInfo, error) {
	day := drawcal.CivilDate(date)
	if !drawcal.IsValidDrawDay(day) {
		return ScheduleInfo{}, fmt.Errorf("%w: %s", ErrNotADrawDay, models.DateKey(day))
	}
	return ScheduleInfo{Schedule: drawcal.BuildSchedule(day), Concurso: drawcal.Concurso(day)}, nil
}
