package services

import (
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/popsorte/draw-backend/internal/models"
)

// Cheap content fingerprints: collection size plus the first and last
// identifying fields, hashed. Enough to decide whether a fetched
// snapshot changed or a derived winner computation can be reused;
// deliberately not a full content digest.

func entriesFingerprint(entries []models.Entry) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d", len(entries))
	if len(entries) > 0 {
		first, last := entries[0], entries[len(entries)-1]
		fmt.Fprintf(h, "|%s|%s|%s|%s|%s|%s|%s|%s",
			first.GameID, first.Concurso, first.Status, first.Validity,
			last.GameID, last.Concurso, last.Status, last.Validity)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func resultsFingerprint(results []models.WinningResult) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d", len(results))
	if len(results) > 0 {
		first, last := results[0], results[len(results)-1]
		fmt.Fprintf(h, "|%s|%s|%v|%s|%s|%v",
			first.Concurso, models.DateKey(first.DrawDate), first.Numbers,
			last.Concurso, models.DateKey(last.DrawDate), last.Numbers)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
