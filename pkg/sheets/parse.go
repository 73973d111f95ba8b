package sheets

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/popsorte/draw-backend/internal/drawcal"
	"github.com/popsorte/draw-backend/internal/models"
)

// ParseStats counts how a sheet parse went. Skipped rows are expected
// with hand-maintained sheets and never fail the whole fetch.
type ParseStats struct {
	Rows    int
	Skipped int
}

// ParseEntriesCSV parses the entries sheet. Columns are located by
// header name so the sheet may reorder or add columns freely; both the
// English and Portuguese header spellings occur in production sheets.
func ParseEntriesCSV(r io.Reader) ([]models.Entry, ParseStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("reading entries header: %w", err)
	}

	platformIdx := findColumnIndex(header, "platform", "plataforma")
	gameIDIdx := findColumnIndex(header, "game id", "gameid", "id do jogo")
	whatsappIdx := findColumnIndex(header, "whatsapp")
	numbersIdx := findColumnIndex(header, "numbers", "numeros", "números", "numeros escolhidos")
	dateIdx := findColumnIndex(header, "draw date", "drawdate", "data sorteio", "data")
	concursoIdx := findColumnIndex(header, "concurso", "contest")
	statusIdx := findColumnIndex(header, "status")
	validityIdx := findColumnIndex(header, "validity", "validade")
	reasonIdx := findColumnIndex(header, "invalid reason", "invalidreasoncode", "motivo")
	bilheteIdx := findColumnIndex(header, "bilhete", "ticket")

	for name, idx := range map[string]int{
		"platform": platformIdx,
		"game id":  gameIDIdx,
		"numbers":  numbersIdx,
		"date":     dateIdx,
		"concurso": concursoIdx,
	} {
		if idx == -1 {
			return nil, ParseStats{}, fmt.Errorf("entries sheet: required column %q not found", name)
		}
	}

	var entries []models.Entry
	var stats ParseStats
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Skipped++
			continue
		}
		stats.Rows++

		numbers, err := parseNumbers(cell(row, numbersIdx))
		if err != nil || len(numbers) == 0 {
			stats.Skipped++
			continue
		}
		drawDate, err := parseDate(cell(row, dateIdx))
		if err != nil {
			stats.Skipped++
			continue
		}
		gameID := cell(row, gameIDIdx)
		if gameID == "" {
			stats.Skipped++
			continue
		}

		entries = append(entries, models.Entry{
			Platform:      cell(row, platformIdx),
			GameID:        gameID,
			Whatsapp:      cell(row, whatsappIdx),
			Numbers:       numbers,
			DrawDate:      drawDate,
			Concurso:      cell(row, concursoIdx),
			Status:        cell(row, statusIdx),
			Validity:      cell(row, validityIdx),
			InvalidReason: cell(row, reasonIdx),
			Bilhete:       cell(row, bilheteIdx),
		})
	}
	return entries, stats, nil
}

// ParseResultsCSV parses the winning-results sheet. Rows without exactly
// five drawn numbers are skipped.
func ParseResultsCSV(r io.Reader) ([]models.WinningResult, ParseStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("reading results header: %w", err)
	}

	concursoIdx := findColumnIndex(header, "concurso", "contest")
	dateIdx := findColumnIndex(header, "draw date", "drawdate", "data sorteio", "data")
	numbersIdx := findColumnIndex(header, "winning numbers", "numbers", "numeros sorteados", "numeros", "números")

	if concursoIdx == -1 || dateIdx == -1 || numbersIdx == -1 {
		return nil, ParseStats{}, fmt.Errorf("results sheet: required columns not found")
	}

	var results []models.WinningResult
	var stats ParseStats
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Skipped++
			continue
		}
		stats.Rows++

		numbers, err := parseNumbers(cell(row, numbersIdx))
		if err != nil || len(numbers) != 5 {
			stats.Skipped++
			continue
		}
		drawDate, err := parseDate(cell(row, dateIdx))
		if err != nil {
			stats.Skipped++
			continue
		}
		concurso := cell(row, concursoIdx)
		if concurso == "" {
			stats.Skipped++
			continue
		}

		results = append(results, models.WinningResult{
			Concurso: concurso,
			DrawDate: drawDate,
			Numbers:  numbers,
		})
	}
	return results, stats, nil
}

// findColumnIndex locates a column by any of its known header spellings
// (case-insensitive).
func findColumnIndex(header []string, names ...string) int {
	for i, col := range header {
		col = strings.ToLower(strings.TrimSpace(col))
		for _, name := range names {
			if col == name {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumbers reads a number list cell ("05,12,33" or "5 12 33").
func parseNumbers(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
	numbers := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// parseDate reads a civil date cell in either ISO or Brazilian format,
// anchored to the fixed BRT calendar.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.ParseInLocation(layout, s, drawcal.BRT); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
