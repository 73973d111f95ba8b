package models

// PrizeTier is the prize category derived from a match count. Priority
// orders tiers for display only; it never decides eligibility.
type PrizeTier struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Priority int    `json:"priority"`
}

// The fixed tier table. Five matches takes the top tier; zero or one
// match takes no prize.
var (
	TierQuina   = PrizeTier{Name: "QUINA", Label: "Quina", Priority: 1}
	TierQuadra  = PrizeTier{Name: "QUADRA", Label: "Quadra", Priority: 2}
	TierTerno   = PrizeTier{Name: "TERNO", Label: "Terno", Priority: 3}
	TierDuque   = PrizeTier{Name: "DUQUE", Label: "Duque", Priority: 4}
	TierNoPrize = PrizeTier{Name: "SEM_PREMIO", Label: "Sem prêmio", Priority: 5}
)
