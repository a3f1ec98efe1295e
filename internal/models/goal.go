package models

import "fmt"

// GoalType tags a goal with the template it was created from
type GoalType string

const (
	GoalRetirement GoalType = "retirement"
	GoalEducation  GoalType = "education"
	GoalHouse      GoalType = "house"
	GoalWedding    GoalType = "wedding"
	GoalCustom     GoalType = "custom"
)

// ParseGoalType converts a string to a GoalType, rejecting unknown values
func ParseGoalType(s string) (GoalType, error) {
	switch GoalType(s) {
	case GoalRetirement, GoalEducation, GoalHouse, GoalWedding, GoalCustom:
		return GoalType(s), nil
	}
	return "", fmt.Errorf("unknown goal type %q", s)
}

// GoalTemplate holds the prefill defaults for one goal type
type GoalTemplate struct {
	Type          GoalType `json:"goal_type"`
	Name          string   `json:"name"`
	TargetAmount  float64  `json:"target_amount"`
	Years         int      `json:"years"`
	InflationRate float64  `json:"inflation_rate"`
}

// GoalTemplates lists the built-in templates in display order. Values match
// the defaults users expect for each life goal: education inflates faster
// than general CPI, property sits in between.
func GoalTemplates() []GoalTemplate {
	return []GoalTemplate{
		{Type: GoalRetirement, Name: "Retirement", TargetAmount: 10000000, Years: 25, InflationRate: 6},
		{Type: GoalEducation, Name: "Education", TargetAmount: 2500000, Years: 15, InflationRate: 10},
		{Type: GoalHouse, Name: "Dream Home", TargetAmount: 5000000, Years: 10, InflationRate: 8},
		{Type: GoalWedding, Name: "Wedding", TargetAmount: 1500000, Years: 5, InflationRate: 7},
		{Type: GoalCustom, Name: "Custom Goal", TargetAmount: 1000000, Years: 5, InflationRate: 6},
	}
}

// TemplateFor returns the template for the given type, falling back to custom
func TemplateFor(t GoalType) GoalTemplate {
	for _, tpl := range GoalTemplates() {
		if tpl.Type == t {
			return tpl
		}
	}
	return GoalTemplates()[len(GoalTemplates())-1]
}

// Goal is a single savings goal. TargetAmount is in present-day money; the
// planner inflates it over the horizon.
type Goal struct {
	ID                 string   `json:"id"`
	Type               GoalType `json:"goal_type"`
	Name               string   `json:"name"`
	TargetAmount       float64  `json:"target_amount"`
	Years              int      `json:"years"`
	InflationRate      float64  `json:"inflation_rate"`  // percent per annum
	ExpectedReturn     float64  `json:"expected_return"` // percent per annum
	CurrentSavings     float64  `json:"current_savings"`
	AnnualStepUpPct    float64  `json:"annual_step_up_pct"` // 0 = constant SIP
}
