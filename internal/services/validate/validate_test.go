package validate

import (
	"testing"

	"goalplan/internal/models"
)

func validProfileForm() ProfileForm {
	return ProfileForm{
		Name:                 "Asha",
		Age:                  "32",
		MonthlyIncome:        "100000",
		MonthlyExpenses:      "60000",
		EmergencyFundMonths:  "6",
		EmergencyFundCurrent: "240000",
		RiskTolerance:        "moderate",
		TaxRegime:            "new",
	}
}

func validGoalForm() GoalForm {
	return GoalForm{
		Type:           "retirement",
		Name:           "Retirement",
		TargetAmount:   "10000000",
		Years:          "25",
		InflationRate:  "6",
		ExpectedReturn: "11",
	}
}

func TestParseProfileHappyPath(t *testing.T) {
	p, errs := ParseProfile(validProfileForm())
	if errs.Any() {
		t.Fatalf("Unexpected errors: %v", errs)
	}

	if p.Name != "Asha" || p.Age != 32 {
		t.Errorf("Name/Age = %q/%d", p.Name, p.Age)
	}
	if p.MonthlyIncome != 100000 || p.MonthlyExpenses != 60000 {
		t.Errorf("Income/Expenses = %v/%v", p.MonthlyIncome, p.MonthlyExpenses)
	}
	if p.EmergencyFundMonths != 6 || p.EmergencyFundCurrent != 240000 {
		t.Errorf("Emergency fund = %d months / %v", p.EmergencyFundMonths, p.EmergencyFundCurrent)
	}
	if p.RiskTolerance != models.RiskModerate || p.TaxRegime != models.TaxRegimeNew {
		t.Errorf("Risk/Regime = %s/%s", p.RiskTolerance, p.TaxRegime)
	}
	if p.Debts == nil || len(p.Debts) != 0 {
		t.Errorf("Debts should be an empty slice, got %v", p.Debts)
	}
}

func TestParseProfileFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProfileForm)
		field  string
	}{
		{"age too low", func(f *ProfileForm) { f.Age = "17" }, "age"},
		{"age too high", func(f *ProfileForm) { f.Age = "81" }, "age"},
		{"age not a number", func(f *ProfileForm) { f.Age = "abc" }, "age"},
		{"income zero", func(f *ProfileForm) { f.MonthlyIncome = "0" }, "monthly_income"},
		{"income negative", func(f *ProfileForm) { f.MonthlyIncome = "-5" }, "monthly_income"},
		{"income garbage", func(f *ProfileForm) { f.MonthlyIncome = "lots" }, "monthly_income"},
		{"expenses equal income", func(f *ProfileForm) { f.MonthlyExpenses = "100000" }, "monthly_expenses"},
		{"expenses above income", func(f *ProfileForm) { f.MonthlyExpenses = "120000" }, "monthly_expenses"},
		{"fund months off-menu", func(f *ProfileForm) { f.EmergencyFundMonths = "5" }, "emergency_fund_months"},
		{"fund months out of range", func(f *ProfileForm) { f.EmergencyFundMonths = "24" }, "emergency_fund_months"},
		{"risk unknown", func(f *ProfileForm) { f.RiskTolerance = "yolo" }, "risk_tolerance"},
		{"regime unknown", func(f *ProfileForm) { f.TaxRegime = "flat" }, "tax_regime"},
		{"fund negative", func(f *ProfileForm) { f.EmergencyFundCurrent = "-1" }, "emergency_fund_current"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validProfileForm()
			tt.mutate(&f)
			_, errs := ParseProfile(f)
			if !errs.Any() {
				t.Fatal("Expected validation errors")
			}
			if _, ok := errs[tt.field]; !ok {
				t.Errorf("Expected error on %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestParseProfileDebtRows(t *testing.T) {
	f := validProfileForm()
	f.Debts = []DebtForm{
		{Name: "Home loan", Type: "home", Principal: "3000000", InterestRate: "8.5", MonthlyEMI: "25000"},
		{Name: "Card", Type: "credit-card", Principal: "80000", InterestRate: "42", MonthlyEMI: "5000"},
	}

	p, errs := ParseProfile(f)
	if errs.Any() {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(p.Debts) != 2 {
		t.Fatalf("Debts = %d, want 2", len(p.Debts))
	}
	if p.Debts[0].Type != models.DebtHome || p.Debts[0].MonthlyEMI != 25000 {
		t.Errorf("First debt parsed wrong: %+v", p.Debts[0])
	}
	if p.TotalMonthlyEMI() != 30000 {
		t.Errorf("TotalMonthlyEMI = %v, want 30000", p.TotalMonthlyEMI())
	}
}

func TestParseProfileBadDebtRowIsIndexed(t *testing.T) {
	f := validProfileForm()
	f.Debts = []DebtForm{
		{Name: "Home loan", Type: "home", Principal: "3000000", InterestRate: "8.5", MonthlyEMI: "25000"},
		{Name: "", Type: "margin", Principal: "x", InterestRate: "99", MonthlyEMI: "-1"},
	}

	_, errs := ParseProfile(f)
	if !errs.Any() {
		t.Fatal("Expected validation errors")
	}
	for _, field := range []string{"debts[1].name", "debts[1].debt_type", "debts[1].principal", "debts[1].interest_rate", "debts[1].monthly_emi"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("Expected error on %q, got %v", field, errs)
		}
	}
	if _, ok := errs["debts[0].name"]; ok {
		t.Error("Valid debt row should not carry errors")
	}
}

func TestParseGoalHappyPath(t *testing.T) {
	g, errs := ParseGoal(validGoalForm())
	if errs.Any() {
		t.Fatalf("Unexpected errors: %v", errs)
	}

	if g.Type != models.GoalRetirement || g.Name != "Retirement" {
		t.Errorf("Type/Name = %s/%q", g.Type, g.Name)
	}
	if g.TargetAmount != 10000000 || g.Years != 25 {
		t.Errorf("Target/Years = %v/%d", g.TargetAmount, g.Years)
	}
	if g.InflationRate != 6 || g.ExpectedReturn != 11 {
		t.Errorf("Inflation/Return = %v/%v", g.InflationRate, g.ExpectedReturn)
	}
	// Omitted optionals default to zero
	if g.CurrentSavings != 0 || g.AnnualStepUpPct != 0 {
		t.Errorf("Optionals = %v/%v, want 0/0", g.CurrentSavings, g.AnnualStepUpPct)
	}
}

func TestParseGoalFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GoalForm)
		field  string
	}{
		{"name blank", func(f *GoalForm) { f.Name = "   " }, "name"},
		{"type unknown", func(f *GoalForm) { f.Type = "yacht" }, "goal_type"},
		{"target zero", func(f *GoalForm) { f.TargetAmount = "0" }, "target_amount"},
		{"years zero", func(f *GoalForm) { f.Years = "0" }, "years"},
		{"years too long", func(f *GoalForm) { f.Years = "51" }, "years"},
		{"inflation negative", func(f *GoalForm) { f.InflationRate = "-1" }, "inflation_rate"},
		{"inflation too high", func(f *GoalForm) { f.InflationRate = "21" }, "inflation_rate"},
		{"return zero", func(f *GoalForm) { f.ExpectedReturn = "0" }, "expected_return"},
		{"return too high", func(f *GoalForm) { f.ExpectedReturn = "31" }, "expected_return"},
		{"savings negative", func(f *GoalForm) { f.CurrentSavings = "-100" }, "current_savings"},
		{"step-up too high", func(f *GoalForm) { f.AnnualStepUpPct = "55" }, "annual_step_up_pct"},
		{"target NaN", func(f *GoalForm) { f.TargetAmount = "NaN" }, "target_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validGoalForm()
			tt.mutate(&f)
			g, errs := ParseGoal(f)
			if !errs.Any() {
				t.Fatal("Expected validation errors")
			}
			if _, ok := errs[tt.field]; !ok {
				t.Errorf("Expected error on %q, got %v", tt.field, errs)
			}
			if g != (models.Goal{}) {
				t.Error("Failed parse must return the zero goal")
			}
		})
	}
}

func TestParseGoalTrimsWhitespace(t *testing.T) {
	f := validGoalForm()
	f.Name = "  House  "
	f.TargetAmount = " 5000000 "

	g, errs := ParseGoal(f)
	if errs.Any() {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if g.Name != "House" {
		t.Errorf("Name = %q, want trimmed", g.Name)
	}
	if g.TargetAmount != 5000000 {
		t.Errorf("TargetAmount = %v", g.TargetAmount)
	}
}

func TestParseProfileRejectsAllAndReturnsZero(t *testing.T) {
	f := validProfileForm()
	f.Age = "abc"

	p, errs := ParseProfile(f)
	if !errs.Any() {
		t.Fatal("Expected validation errors")
	}
	if p.Name != "" || p.MonthlyIncome != 0 {
		t.Errorf("Failed parse must return the zero profile, got %+v", p)
	}
}
