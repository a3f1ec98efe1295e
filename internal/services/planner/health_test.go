package planner

import (
	"testing"

	"goalplan/internal/models"
)

func TestComputeHealthSolidProfile(t *testing.T) {
	profile := models.Profile{
		Age:                  32,
		MonthlyIncome:        100000,
		MonthlyExpenses:      60000,
		EmergencyFundMonths:  6,
		EmergencyFundCurrent: 240000,
		RiskTolerance:        models.RiskModerate,
		TaxRegime:            models.TaxRegimeNew,
	}

	snap := ComputeHealth(profile, nil)

	if snap.EmergencyFundRequired != 360000 {
		t.Errorf("EmergencyFundRequired = %v, want 360000", snap.EmergencyFundRequired)
	}
	if snap.EmergencyFundPct < 66.6 || snap.EmergencyFundPct > 66.7 {
		t.Errorf("EmergencyFundPct = %v, want ~66.7", snap.EmergencyFundPct)
	}
	if snap.Surplus != 40000 {
		t.Errorf("Surplus = %v, want 40000", snap.Surplus)
	}
	// 50 base + 10 (fund half built) + 15 (40% surplus) + 10 (debt free)
	// + 10 (SIPs fit the surplus)
	if snap.Score != 95 {
		t.Errorf("Score = %d, want 95", snap.Score)
	}
	if snap.Label != "Excellent" {
		t.Errorf("Label = %q, want Excellent", snap.Label)
	}
}

func TestComputeHealthEMIRaisesEmergencyTarget(t *testing.T) {
	profile := models.Profile{
		MonthlyIncome:       100000,
		MonthlyExpenses:     50000,
		EmergencyFundMonths: 6,
		Debts: []models.Debt{
			{Name: "Home loan", Type: models.DebtHome, Principal: 3000000, InterestRate: 8.5, MonthlyEMI: 25000},
		},
	}

	snap := ComputeHealth(profile, nil)

	// EMIs keep falling due during a disruption, so the target covers them
	if snap.EmergencyFundRequired != (50000+25000)*6 {
		t.Errorf("EmergencyFundRequired = %v, want 450000", snap.EmergencyFundRequired)
	}
	if snap.TotalMonthlyEMI != 25000 {
		t.Errorf("TotalMonthlyEMI = %v, want 25000", snap.TotalMonthlyEMI)
	}
	if snap.DebtToIncomeRatio != 0.25 {
		t.Errorf("DebtToIncomeRatio = %v, want 0.25", snap.DebtToIncomeRatio)
	}
}

func TestComputeHealthScoreStaysInRange(t *testing.T) {
	profiles := []models.Profile{
		{}, // all zero, including income
		{MonthlyIncome: 30000, MonthlyExpenses: 45000, EmergencyFundMonths: 6,
			Debts: []models.Debt{
				{Name: "Card", Type: models.DebtCreditCard, InterestRate: 42, MonthlyEMI: 15000},
				{Name: "Personal", Type: models.DebtPersonal, InterestRate: 18, MonthlyEMI: 8000},
			}},
		{MonthlyIncome: 500000, MonthlyExpenses: 50000, EmergencyFundMonths: 3, EmergencyFundCurrent: 10000000},
	}

	for i, p := range profiles {
		snap := ComputeHealth(p, nil)
		if snap.Score < 0 || snap.Score > 100 {
			t.Errorf("profile %d: score %d outside [0,100]", i, snap.Score)
		}
	}
}

func TestComputeHealthWorstCaseBottomsOut(t *testing.T) {
	profile := models.Profile{
		MonthlyIncome:       40000,
		MonthlyExpenses:     45000,
		EmergencyFundMonths: 6,
		Debts: []models.Debt{
			{Name: "Card", Type: models.DebtCreditCard, InterestRate: 42, MonthlyEMI: 20000},
		},
	}
	goal := models.Goal{TargetAmount: 10000000, Years: 5, InflationRate: 6, ExpectedReturn: 10}

	snap := ComputeHealth(profile, []models.Goal{goal})

	// 50 - 10 (no fund) - 15 (no surplus) - 15 (EMI > 40%) - 10 (high
	// interest) - 5 (SIP over surplus) = -5, clamped to 0
	if snap.Score != 0 {
		t.Errorf("Score = %d, want 0", snap.Score)
	}
	if snap.Label != "At Risk" {
		t.Errorf("Label = %q, want At Risk", snap.Label)
	}
}

func TestHighInterestDebtsSortedByRate(t *testing.T) {
	profile := models.Profile{
		MonthlyIncome:       100000,
		MonthlyExpenses:     50000,
		EmergencyFundMonths: 6,
		Debts: []models.Debt{
			{Name: "Personal", Type: models.DebtPersonal, InterestRate: 16, MonthlyEMI: 5000},
			{Name: "Card", Type: models.DebtCreditCard, InterestRate: 42, MonthlyEMI: 3000},
			{Name: "Home", Type: models.DebtHome, InterestRate: 8.5, MonthlyEMI: 20000},
			{Name: "Car", Type: models.DebtCar, InterestRate: 15, MonthlyEMI: 9000},
		},
	}

	snap := ComputeHealth(profile, nil)

	if len(snap.HighInterestDebts) != 2 {
		t.Fatalf("HighInterestDebts = %d entries, want 2 (rate must exceed 15%%)", len(snap.HighInterestDebts))
	}
	if snap.HighInterestDebts[0].Name != "Card" || snap.HighInterestDebts[1].Name != "Personal" {
		t.Errorf("Payoff order wrong: %q then %q", snap.HighInterestDebts[0].Name, snap.HighInterestDebts[1].Name)
	}

	found := false
	for _, a := range snap.Advisories {
		if a.Code == models.AdvisoryHighInterestDebt {
			found = true
		}
	}
	if !found {
		t.Error("Expected high-interest debt advisory")
	}
}

func TestComputeHealthSIPOverreachAdvisory(t *testing.T) {
	profile := models.Profile{
		MonthlyIncome:       80000,
		MonthlyExpenses:     70000,
		EmergencyFundMonths: 6,
	}
	goal := models.Goal{TargetAmount: 10000000, Years: 10, InflationRate: 6, ExpectedReturn: 11}

	snap := ComputeHealth(profile, []models.Goal{goal})

	if snap.TotalMonthlySIP <= snap.Surplus {
		t.Fatalf("Test premise broken: SIP %v should exceed surplus %v", snap.TotalMonthlySIP, snap.Surplus)
	}
	found := false
	for _, a := range snap.Advisories {
		if a.Code == models.AdvisorySIPExceedsSurplus {
			found = true
		}
	}
	if !found {
		t.Error("Expected SIP-exceeds-surplus advisory")
	}
}

func TestComputeHealthImprovesWithEmergencyFund(t *testing.T) {
	base := models.Profile{
		MonthlyIncome:       100000,
		MonthlyExpenses:     60000,
		EmergencyFundMonths: 6,
	}

	prev := -1
	for _, fund := range []float64{0, 100000, 200000, 360000} {
		p := base
		p.EmergencyFundCurrent = fund
		score := ComputeHealth(p, nil).Score
		if score < prev {
			t.Errorf("Score dropped from %d to %d as the fund grew to %v", prev, score, fund)
		}
		prev = score
	}
}
