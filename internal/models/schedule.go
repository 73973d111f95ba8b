package models

import "time"

// DrawSchedule describes one draw's registration window. Values are
// constructed once by the calendar engine and never mutated.
//
// Invariants: Cutoff precedes DrawTime by exactly one second; RegStart
// (20:00:01 on the previous civil day) precedes Cutoff.
type DrawSchedule struct {
	DrawDate time.Time `json:"drawDate"` // midnight, civil BRT calendar
	DrawHour int       `json:"drawHour"` // 17 or 20
	DrawTime time.Time `json:"drawTime"`
	Cutoff   time.Time `json:"cutoff"`
	RegStart time.Time `json:"regStart"`
}
