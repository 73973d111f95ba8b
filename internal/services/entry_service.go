package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/popsorte/draw-backend/internal/models"
	"github.com/popsorte/draw-backend/pkg/ticketapi"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure EntryServiceImpl implements EntryService
var _ EntryService = (*EntryServiceImpl)(nil)

// ErrInvalidEntry wraps every submission validation failure so handlers
// can map the whole family to a 400 response.
var ErrInvalidEntry = errors.New("invalid entry")

const (
	minChosenNumbers = 5
	maxChosenNumbers = 20
	maxGameNumber    = 80
)

var (
	gameIDPattern   = regexp.MustCompile(`^[0-9]{10}$`)
	whatsappPattern = regexp.MustCompile(`^[0-9]{10,13}$`)
)

// EntryServiceImpl validates submissions, stamps them with the open
// draw's date and concurso, and hands them to the ticket API.
type EntryServiceImpl struct {
	drawService DrawService
	tickets     TicketClient
	platforms   map[string]struct{}
}

// NewEntryService creates an EntryServiceImpl. An empty platform list
// disables the platform allow-check.
func NewEntryService(drawService DrawService, tickets TicketClient, platforms []string) *EntryServiceImpl {
	allowed := make(map[string]struct{}, len(platforms))
	for _, p := range platforms {
		allowed[strings.ToUpper(strings.TrimSpace(p))] = struct{}{}
	}
	return &EntryServiceImpl{
		drawService: drawService,
		tickets:     tickets,
		platforms:   allowed,
	}
}

// SubmitEntry validates the submission, stamps it with the currently
// open draw, and creates the remote ticket.
func (s *EntryServiceImpl) SubmitEntry(ctx context.Context, req SubmitEntryRequest) (*SubmitEntryResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	info, err := s.drawService.CurrentSchedule()
	if err != nil {
		return nil, fmt.Errorf("resolving draw for entry: %w", err)
	}

	resp, err := s.tickets.CreateTicket(ctx, ticketapi.TicketRequest{
		Platform:          req.Platform,
		GameID:            req.GameID,
		WhatsappNumber:    req.Whatsapp,
		NumerosEscolhidos: joinPadded(req.Numbers),
		DrawDate:          models.DateKey(info.Schedule.DrawDate),
		Concurso:          info.Concurso,
	})
	if err != nil {
		slog.Error("Ticket creation failed", "error", err, "platform", req.Platform, "gameId", req.GameID)
		return nil, fmt.Errorf("creating ticket: %w", err)
	}

	slog.Info("Entry submitted",
		"platform", req.Platform,
		"gameId", req.GameID,
		"concurso", info.Concurso,
		"drawDate", models.DateKey(info.Schedule.DrawDate),
		"bilhete", resp.BilheteNumber)

	return &SubmitEntryResponse{
		Bilhete:  resp.BilheteNumber,
		Concurso: info.Concurso,
		Schedule: info.Schedule,
	}, nil
}

func (s *EntryServiceImpl) validate(req SubmitEntryRequest) error {
	if len(s.platforms) > 0 {
		if _, ok := s.platforms[strings.ToUpper(strings.TrimSpace(req.Platform))]; !ok {
			return fmt.Errorf("%w: unknown platform %q", ErrInvalidEntry, req.Platform)
		}
	}
	if !gameIDPattern.MatchString(req.GameID) {
		return fmt.Errorf("%w: game ID must be exactly 10 digits", ErrInvalidEntry)
	}
	if req.Whatsapp != "" && !whatsappPattern.MatchString(req.Whatsapp) {
		return fmt.Errorf("%w: whatsapp number must be 10 to 13 digits", ErrInvalidEntry)
	}
	if len(req.Numbers) < minChosenNumbers || len(req.Numbers) > maxChosenNumbers {
		return fmt.Errorf("%w: choose between %d and %d numbers", ErrInvalidEntry, minChosenNumbers, maxChosenNumbers)
	}
	seen := make(map[int]struct{}, len(req.Numbers))
	for _, n := range req.Numbers {
		if n < 1 || n > maxGameNumber {
			return fmt.Errorf("%w: number %d is out of range 1..%d", ErrInvalidEntry, n, maxGameNumber)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: number %d chosen more than once", ErrInvalidEntry, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// joinPadded renders chosen numbers the way the ticket API expects them:
// zero-padded to two digits, comma-joined.
func joinPadded(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, ",")
}
