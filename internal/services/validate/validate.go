// Package validate is the single parse-and-validate boundary between
// free-text form input and the typed records the planner consumes. The
// planner is never called with values that did not pass through here.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"goalplan/internal/models"
)

// Errors maps field names to user-facing messages. An empty map means the
// form parsed cleanly.
type Errors map[string]string

// Any reports whether any field failed validation
func (e Errors) Any() bool { return len(e) > 0 }

// ProfileForm carries the raw string fields of the profile form
type ProfileForm struct {
	Name                 string     `json:"name"`
	Age                  string     `json:"age"`
	MonthlyIncome        string     `json:"monthly_income"`
	MonthlyExpenses      string     `json:"monthly_expenses"`
	EmergencyFundMonths  string     `json:"emergency_fund_months"`
	EmergencyFundCurrent string     `json:"emergency_fund_current"`
	RiskTolerance        string     `json:"risk_tolerance"`
	TaxRegime            string     `json:"tax_regime"`
	Debts                []DebtForm `json:"debts"`
}

// DebtForm carries the raw string fields of one debt row
type DebtForm struct {
	Name         string `json:"name"`
	Type         string `json:"debt_type"`
	Principal    string `json:"principal"`
	InterestRate string `json:"interest_rate"`
	MonthlyEMI   string `json:"monthly_emi"`
}

// GoalForm carries the raw string fields of the goal form
type GoalForm struct {
	ID              string `json:"id"`
	Type            string `json:"goal_type"`
	Name            string `json:"name"`
	TargetAmount    string `json:"target_amount"`
	Years           string `json:"years"`
	InflationRate   string `json:"inflation_rate"`
	ExpectedReturn  string `json:"expected_return"`
	CurrentSavings  string `json:"current_savings"`
	AnnualStepUpPct string `json:"annual_step_up_pct"`
}

// ParseProfile validates a profile form and returns the typed profile
func ParseProfile(f ProfileForm) (models.Profile, Errors) {
	errs := Errors{}
	p := models.Profile{Name: strings.TrimSpace(f.Name), Debts: []models.Debt{}}

	p.Age = parseIntField(errs, "age", f.Age, 18, 80)
	p.MonthlyIncome = parseAmount(errs, "monthly_income", f.MonthlyIncome, true)
	p.MonthlyExpenses = parseAmount(errs, "monthly_expenses", f.MonthlyExpenses, false)
	p.EmergencyFundCurrent = parseAmount(errs, "emergency_fund_current", f.EmergencyFundCurrent, false)

	months := parseIntField(errs, "emergency_fund_months", f.EmergencyFundMonths, 3, 12)
	switch months {
	case 3, 6, 9, 12:
		p.EmergencyFundMonths = months
	default:
		if _, seen := errs["emergency_fund_months"]; !seen {
			errs["emergency_fund_months"] = "must be 3, 6, 9 or 12 months"
		}
	}

	if risk, err := models.ParseRiskTolerance(f.RiskTolerance); err != nil {
		errs["risk_tolerance"] = "choose conservative, moderate or aggressive"
	} else {
		p.RiskTolerance = risk
	}
	if regime, err := models.ParseTaxRegime(f.TaxRegime); err != nil {
		errs["tax_regime"] = "choose old or new"
	} else {
		p.TaxRegime = regime
	}

	if _, bad := errs["monthly_income"]; !bad {
		if _, bad2 := errs["monthly_expenses"]; !bad2 && p.MonthlyExpenses >= p.MonthlyIncome {
			errs["monthly_expenses"] = "expenses must be below income"
		}
	}

	for i, df := range f.Debts {
		debt, derrs := parseDebt(df)
		for field, msg := range derrs {
			errs[fmt.Sprintf("debts[%d].%s", i, field)] = msg
		}
		if !derrs.Any() {
			p.Debts = append(p.Debts, debt)
		}
	}

	if errs.Any() {
		return models.Profile{}, errs
	}
	return p, errs
}

// parseDebt validates one debt row
func parseDebt(f DebtForm) (models.Debt, Errors) {
	errs := Errors{}
	d := models.Debt{Name: strings.TrimSpace(f.Name)}
	if d.Name == "" {
		errs["name"] = "name is required"
	}
	if t, err := models.ParseDebtType(f.Type); err != nil {
		errs["debt_type"] = "unknown debt type"
	} else {
		d.Type = t
	}
	d.Principal = parseAmount(errs, "principal", f.Principal, false)
	d.InterestRate = parseRate(errs, "interest_rate", f.InterestRate, 0, 60)
	d.MonthlyEMI = parseAmount(errs, "monthly_emi", f.MonthlyEMI, false)
	return d, errs
}

// ParseGoal validates a goal form and returns the typed goal. The caller
// assigns the ID for new goals.
func ParseGoal(f GoalForm) (models.Goal, Errors) {
	errs := Errors{}
	g := models.Goal{ID: f.ID, Name: strings.TrimSpace(f.Name)}

	if g.Name == "" {
		errs["name"] = "name is required"
	}
	if t, err := models.ParseGoalType(f.Type); err != nil {
		errs["goal_type"] = "unknown goal type"
	} else {
		g.Type = t
	}

	g.TargetAmount = parseAmount(errs, "target_amount", f.TargetAmount, true)
	g.Years = parseIntField(errs, "years", f.Years, 1, 50)
	g.InflationRate = parseRate(errs, "inflation_rate", f.InflationRate, 0, 20)
	g.ExpectedReturn = parseRate(errs, "expected_return", f.ExpectedReturn, 1, 30)
	g.CurrentSavings = parseAmount(errs, "current_savings", defaultStr(f.CurrentSavings, "0"), false)
	g.AnnualStepUpPct = parseRate(errs, "annual_step_up_pct", defaultStr(f.AnnualStepUpPct, "0"), 0, 50)

	if errs.Any() {
		return models.Goal{}, errs
	}
	return g, errs
}

func defaultStr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// parseAmount parses a currency amount; positive requires a value > 0
func parseAmount(errs Errors, field, raw string, positive bool) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		errs[field] = "enter a valid amount"
		return 0
	}
	if v < 0 {
		errs[field] = "cannot be negative"
		return 0
	}
	if positive && v == 0 {
		errs[field] = "must be greater than zero"
		return 0
	}
	return v
}

// parseRate parses a percentage and checks its allowed range
func parseRate(errs Errors, field, raw string, min, max float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		errs[field] = "enter a valid percentage"
		return 0
	}
	if v < min || v > max {
		errs[field] = fmt.Sprintf("must be between %g%% and %g%%", min, max)
		return 0
	}
	return v
}

// parseIntField parses an integer and checks its allowed range
func parseIntField(errs Errors, field, raw string, min, max int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		errs[field] = "enter a whole number"
		return 0
	}
	if v < min || v > max {
		errs[field] = fmt.Sprintf("must be between %d and %d", min, max)
		return 0
	}
	return v
}
