package models

import (
	"strings"
	"time"
)

// Entry statuses as published by the back-office sheet. The sheet is
// maintained by hand, so both the English and Portuguese spellings of
// the validated/invalid states occur in real data.
const (
	StatusPending   = "PENDING"
	StatusValid     = "VALID"
	StatusValidated = "VALIDATED"
	StatusValidado  = "VALIDADO"
	StatusInvalid   = "INVALID"
	StatusInvalido  = "INVÁLIDO"
)

// Validity values computed by the upstream recharge screening process.
const (
	ValidityValid   = "VALID"
	ValidityInvalid = "INVALID"
)

// Entry represents a submitted game ticket as read back from the entries
// sheet. The service never mutates Status or Validity; both are owned by
// the back-office process.
type Entry struct {
	Platform      string    `json:"platform"`
	GameID        string    `json:"gameId"`
	Whatsapp      string    `json:"whatsapp,omitempty"`
	Numbers       []int     `json:"numbers"`
	DrawDate      time.Time `json:"drawDate"`
	Concurso      string    `json:"concurso"`
	Status        string    `json:"status"`
	Validity      string    `json:"validity,omitempty"`
	InvalidReason string    `json:"invalidReasonCode,omitempty"`
	Bilhete       string    `json:"bilheteNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// NormalizeStatus maps a raw sheet status cell onto the closed vocabulary
// (trimmed, upper-cased).
func NormalizeStatus(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}

// StatusAccepted reports whether a status marks the entry as validated
// for winner consideration.
func StatusAccepted(status string) bool {
	switch NormalizeStatus(status) {
	case StatusValid, StatusValidated, StatusValidado:
		return true
	}
	return false
}

// StatusRejected reports whether a status explicitly marks the entry invalid.
func StatusRejected(status string) bool {
	switch NormalizeStatus(status) {
	case StatusInvalid, StatusInvalido:
		return true
	}
	return false
}
