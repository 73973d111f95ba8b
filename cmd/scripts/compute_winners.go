package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/popsorte/draw-backend/internal/models"
	"github.com/popsorte/draw-backend/internal/winners"
	"github.com/popsorte/draw-backend/pkg/sheets"
)

// Offline winner computation over two exported CSVs. Useful for audits:
// it runs the exact engine the API serves, against files instead of the
// live sheets.
func main() {
	_ = godotenv.Load()

	if len(os.Args) < 3 {
		log.Fatal("Usage: compute_winners <entries.csv> <results.csv>")
	}

	entries, entryStats, err := parseEntries(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to parse entries: %v", err)
	}
	results, resultStats, err := parseResults(os.Args[2])
	if err != nil {
		log.Fatalf("Failed to parse results: %v", err)
	}

	index := make(map[models.ResultKey]models.WinningResult, len(results))
	for _, r := range results {
		index[r.Key()] = r
	}
	lookup := winners.ResultLookupFunc(func(key models.ResultKey) (models.WinningResult, bool) {
		r, ok := index[key]
		return r, ok
	})

	list := winners.GetWinners(entries, lookup)

	fmt.Printf("Entries: %d (%d rows skipped)\n", len(entries), entryStats.Skipped)
	fmt.Printf("Results: %d (%d rows skipped)\n", len(results), resultStats.Skipped)
	fmt.Printf("Winners: %d\n\n", len(list))
	if len(list) == 0 {
		return
	}

	fmt.Printf("%-8s %-10s %-12s %-12s %-7s %s\n", "PLATFORM", "CONCURSO", "DATE", "GAME ID", "MATCHES", "TIER")
	for _, w := range list {
		fmt.Printf("%-8s %-10s %-12s %-12s %-7d %s\n",
			w.Entry.Platform,
			w.Entry.Concurso,
			models.DateKey(w.Entry.DrawDate),
			w.Entry.GameID,
			w.Outcome.Matches,
			w.Outcome.Tier.Label)
	}
}

func parseEntries(path string) ([]models.Entry, sheets.ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sheets.ParseStats{}, err
	}
	defer f.Close()
	return sheets.ParseEntriesCSV(f)
}

func parseResults(path string) ([]models.WinningResult, sheets.ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sheets.ParseStats{}, err
	}
	defer f.Close()
	return sheets.ParseResultsCSV(f)
}
