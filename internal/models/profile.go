package models

import "fmt"

// RiskTolerance is the user-selected risk band that caps equity exposure
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// ParseRiskTolerance converts a string to a RiskTolerance, rejecting unknown values
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	switch RiskTolerance(s) {
	case RiskConservative, RiskModerate, RiskAggressive:
		return RiskTolerance(s), nil
	}
	return "", fmt.Errorf("unknown risk tolerance %q", s)
}

// EquityCeiling returns the maximum equity allocation percentage for this band
func (r RiskTolerance) EquityCeiling() float64 {
	switch r {
	case RiskConservative:
		return 30
	case RiskAggressive:
		return 85
	default:
		return 60
	}
}

// TaxRegime selects which tax-advantaged instruments apply
type TaxRegime string

const (
	TaxRegimeOld TaxRegime = "old" // 80C deductions available (ELSS, PPF)
	TaxRegimeNew TaxRegime = "new" // lower slabs, NPS employer route only
)

// ParseTaxRegime converts a string to a TaxRegime, rejecting unknown values
func ParseTaxRegime(s string) (TaxRegime, error) {
	switch TaxRegime(s) {
	case TaxRegimeOld, TaxRegimeNew:
		return TaxRegime(s), nil
	}
	return "", fmt.Errorf("unknown tax regime %q", s)
}

// DebtType categorizes a debt for display and prioritization
type DebtType string

const (
	DebtCreditCard DebtType = "credit-card"
	DebtPersonal   DebtType = "personal"
	DebtCar        DebtType = "car"
	DebtEducation  DebtType = "education"
	DebtHome       DebtType = "home"
)

// ParseDebtType converts a string to a DebtType, rejecting unknown values
func ParseDebtType(s string) (DebtType, error) {
	switch DebtType(s) {
	case DebtCreditCard, DebtPersonal, DebtCar, DebtEducation, DebtHome:
		return DebtType(s), nil
	}
	return "", fmt.Errorf("unknown debt type %q", s)
}

// Debt is a single outstanding liability with its monthly service cost
type Debt struct {
	Name         string   `json:"name"`
	Type         DebtType `json:"debt_type"`
	Principal    float64  `json:"principal"`
	InterestRate float64  `json:"interest_rate"` // percent per annum
	MonthlyEMI   float64  `json:"monthly_emi"`
}

// Profile is the user's financial snapshot. It is owned and mutated by the
// store; all planner functions treat it as read-only input.
type Profile struct {
	Name                  string        `json:"name"`
	Age                   int           `json:"age"`
	MonthlyIncome         float64       `json:"monthly_income"`
	MonthlyExpenses       float64       `json:"monthly_expenses"`
	EmergencyFundMonths   int           `json:"emergency_fund_months"` // 3, 6, 9 or 12
	EmergencyFundCurrent  float64       `json:"emergency_fund_current"`
	RiskTolerance         RiskTolerance `json:"risk_tolerance"`
	TaxRegime             TaxRegime     `json:"tax_regime"`
	Debts                 []Debt        `json:"debts"`
}

// DefaultProfile returns a profile with the recommended starting choices
func DefaultProfile() Profile {
	return Profile{
		Age:                 30,
		EmergencyFundMonths: 6,
		RiskTolerance:       RiskModerate,
		TaxRegime:           TaxRegimeNew,
		Debts:               []Debt{},
	}
}

// TotalMonthlyEMI sums debt service across all debts
func (p *Profile) TotalMonthlyEMI() float64 {
	total := 0.0
	for _, d := range p.Debts {
		total += d.MonthlyEMI
	}
	return total
}

// AnnualIncome returns the annualized gross income used for tax slab lookup
func (p *Profile) AnnualIncome() float64 {
	return p.MonthlyIncome * 12
}
