package models

// HealthSnapshot aggregates the profile and all goals into affordability
// figures and a composite 0-100 score
type HealthSnapshot struct {
	Surplus                 float64 `json:"surplus"` // income - expenses - EMI
	TotalMonthlyEMI         float64 `json:"total_monthly_emi"`
	EmergencyFundRequired   float64 `json:"emergency_fund_required"`
	EmergencyFundCurrent    float64 `json:"emergency_fund_current"`
	EmergencyFundPct        float64 `json:"emergency_fund_pct"`
	TotalMonthlySIP         float64 `json:"total_monthly_sip"`
	SIPAsPctOfSurplus       float64 `json:"sip_as_pct_of_surplus"`
	DebtToIncomeRatio       float64 `json:"debt_to_income_ratio"`
	SavingsRate             float64 `json:"savings_rate"`
	Score                   int     `json:"score"` // clamped to [0,100]
	Label                   string  `json:"label"`
	HighInterestDebts       []Debt  `json:"high_interest_debts,omitempty"` // sorted by rate desc
	Advisories              []Advisory `json:"advisories,omitempty"`
}

// ScoreLabel maps a composite score to the band shown on the score ring
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 65:
		return "Good"
	case score >= 50:
		return "Fair"
	case score >= 35:
		return "Needs Work"
	default:
		return "At Risk"
	}
}
