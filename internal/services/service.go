package services

import (
	"context"
	"time"

	"github.com/popsorte/draw-backend/internal/models"
	"github.com/popsorte/draw-backend/pkg/sheets"
	"github.com/popsorte/draw-backend/pkg/ticketapi"
)

// ScheduleInfo pairs a draw schedule with its contest number; UI layers
// always consume them together (countdowns plus contest labels).
type ScheduleInfo struct {
	Schedule models.DrawSchedule `json:"schedule"`
	Concurso int                 `json:"concurso"`
}

// DrawService exposes the draw calendar to the HTTP layer.
type DrawService interface {
	// CurrentSchedule resolves the draw currently open for registration.
	CurrentSchedule() (ScheduleInfo, error)

	// ScheduleForDate returns the schedule and concurso of a specific
	// draw day; ErrNotADrawDay if no draw happens on that date.
	ScheduleForDate(date time.Time) (ScheduleInfo, error)

	// Now returns the (server-corrected) current instant.
	Now() time.Time
}

// SubmitEntryRequest is a new game submission from the entry page.
type SubmitEntryRequest struct {
	Platform string `json:"platform" binding:"required"`
	GameID   string `json:"gameId" binding:"required"`
	Whatsapp string `json:"whatsapp"`
	Numbers  []int  `json:"numbers" binding:"required"`
}

// SubmitEntryResponse reports the created ticket and the draw it was
// stamped with.
type SubmitEntryResponse struct {
	Bilhete  string              `json:"bilheteNumber"`
	Concurso int                 `json:"concurso"`
	Schedule models.DrawSchedule `json:"schedule"`
}

// EntryService validates and submits new game entries.
type EntryService interface {
	SubmitEntry(ctx context.Context, req SubmitEntryRequest) (*SubmitEntryResponse, error)
}

// RefreshStats summarizes one sheet polling cycle.
type RefreshStats struct {
	Entries        int  `json:"entries"`
	Results        int  `json:"results"`
	EntriesChanged bool `json:"entriesChanged"`
	ResultsChanged bool `json:"resultsChanged"`
	SkippedRows    int  `json:"skippedRows"`
}

// ResultService keeps the in-memory snapshots in sync with the sheets.
type ResultService interface {
	Refresh(ctx context.Context) (RefreshStats, error)
	RecentResults(limit int) []models.WinningResult
}

// WinnerService computes winner lists and per-ticket standings over the
// current snapshots.
type WinnerService interface {
	GetWinners() []models.Winner
	EntryStanding(gameID string) (models.Entry, models.ValidationOutcome, bool)
	ValidateEntry(entry models.Entry) models.ValidationOutcome
}

// SheetSource is the slice of the sheets client the result service
// depends on.
type SheetSource interface {
	FetchEntries(ctx context.Context) ([]models.Entry, sheets.ParseStats, error)
	FetchResults(ctx context.Context) ([]models.WinningResult, sheets.ParseStats, error)
}

// TicketClient is the slice of the ticket API client the entry service
// depends on.
type TicketClient interface {
	CreateTicket(ctx context.Context, req ticketapi.TicketRequest) (*ticketapi.TicketResponse, error)
}
