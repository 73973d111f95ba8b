package models

// Gate identifies the check that rejected an entry before matching.
type Gate string

const (
	GateRechargeInvalid    Gate = "RECHARGE_INVALID"
	GateValidityUnknown    Gate = "VALIDITY_UNKNOWN"
	GateStatusInvalid      Gate = "STATUS_INVALID"
	GateStatusNotValidated Gate = "STATUS_NOT_VALIDATED"
)

// ValidationOutcome is the result of running an entry through the
// validation gate. A rejection is a normal outcome, not an error: Gate
// names the failing check, or is empty when the contest simply has no
// published winning numbers yet.
type ValidationOutcome struct {
	Validated      bool      `json:"validated"`
	Gate           Gate      `json:"gate,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	Matches        int       `json:"matches"`
	MatchedNumbers []int     `json:"matchedNumbers,omitempty"`
	WinningNumbers []int     `json:"winningNumbers,omitempty"`
	Tier           PrizeTier `json:"tier"`
}

// Winner pairs an entry with its validation outcome. WinningLevel is the
// match count shared by every winner of the entry's prize-pool group.
type Winner struct {
	Entry        Entry             `json:"entry"`
	Outcome      ValidationOutcome `json:"outcome"`
	WinningLevel int               `json:"winningLevel"`
}
