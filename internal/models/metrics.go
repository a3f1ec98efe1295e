package models

// ProjectionYear is one point of a goal's year-by-year convergence series
type ProjectionYear struct {
	Year             int     `json:"year"`
	CumulativeInvested float64 `json:"cumulative_invested"`
	CumulativeValue  float64 `json:"cumulative_value"`
	InflatedTarget   float64 `json:"inflated_target"`
}

// GoalMetrics holds everything derived from a single goal. Metrics are
// recomputed on every read and never persisted, so they always reflect the
// latest goal inputs.
type GoalMetrics struct {
	GoalID                  string           `json:"goal_id"`
	InflationAdjustedTarget float64          `json:"inflation_adjusted_target"`
	FutureValueOfSavings    float64          `json:"future_value_of_savings"`
	RemainingAmountNeeded   float64          `json:"remaining_amount_needed"` // floored at 0
	MonthlySIP              float64          `json:"monthly_sip"`
	TotalInvested           float64          `json:"total_invested"`
	YearlyProjection        []ProjectionYear `json:"yearly_projection"`
	Advisories              []Advisory       `json:"advisories,omitempty"`
}

// Advisory is a non-blocking insight surfaced alongside normal results
type Advisory struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Advisory codes. These flag conditions worth the user's attention; they
// never block or alter a calculation.
const (
	AdvisoryInflationNearReturn = "inflation-near-return"
	AdvisorySIPExceedsSurplus   = "sip-exceeds-surplus"
	AdvisoryHighInterestDebt    = "high-interest-debt"
)
