// Package export renders a plain-text summary of the plan: profile, health
// snapshot, and every goal with its metrics and recommended mix. Pure
// formatting over planner output.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"goalplan/internal/models"
	"goalplan/internal/services/marketdata"
	"goalplan/internal/services/planner"
)

const disclaimer = "Educational tool only, not financial advice. Consult a SEBI-registered advisor before investing."

// Summary formats the whole plan as human-readable text
func Summary(plan models.Plan, catalog *marketdata.Catalog, now time.Time) string {
	var b strings.Builder

	name := plan.Profile.Name
	if name == "" {
		name = "Friend"
	}

	fmt.Fprintf(&b, "FINANCIAL GOAL PLAN — %s\n", name)
	fmt.Fprintf(&b, "Generated %s\n", now.Format("2 Jan 2006 15:04"))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	writeProfile(&b, plan.Profile)
	writeHealth(&b, planner.ComputeHealth(plan.Profile, plan.Goals))

	for i, goal := range plan.Goals {
		metrics := planner.ComputeGoalMetrics(goal)
		lines := planner.RecommendAllocation(goal, plan.Profile, metrics, catalog)
		writeGoal(&b, i+1, goal, metrics, lines)
	}
	if len(plan.Goals) == 0 {
		b.WriteString("No goals yet.\n\n")
	}

	b.WriteString(strings.Repeat("-", 60) + "\n")
	b.WriteString(disclaimer + "\n")
	return b.String()
}

func writeProfile(b *strings.Builder, p models.Profile) {
	fmt.Fprintf(b, "PROFILE\n")
	fmt.Fprintf(b, "  Age: %d   Risk: %s   Tax regime: %s\n", p.Age, p.RiskTolerance, p.TaxRegime)
	fmt.Fprintf(b, "  Income: %s/mo   Expenses: %s/mo\n", FormatINR(p.MonthlyIncome), FormatINR(p.MonthlyExpenses))
	fmt.Fprintf(b, "  Emergency fund: %s (target %d months)\n", FormatINR(p.EmergencyFundCurrent), p.EmergencyFundMonths)
	if len(p.Debts) > 0 {
		fmt.Fprintf(b, "  Debts:\n")
		for _, d := range p.Debts {
			fmt.Fprintf(b, "    - %s (%s): %s principal, %.1f%% APR, EMI %s/mo\n",
				d.Name, d.Type, FormatINR(d.Principal), d.InterestRate, FormatINR(d.MonthlyEMI))
		}
	}
	b.WriteString("\n")
}

func writeHealth(b *strings.Builder, h models.HealthSnapshot) {
	fmt.Fprintf(b, "FINANCIAL HEALTH — %d/100 (%s)\n", h.Score, h.Label)
	fmt.Fprintf(b, "  Surplus: %s/mo   Savings rate: %.1f%%\n", FormatINR(h.Surplus), h.SavingsRate)
	fmt.Fprintf(b, "  Emergency fund: %s of %s (%.0f%%)\n",
		FormatINR(h.EmergencyFundCurrent), FormatINR(h.EmergencyFundRequired), h.EmergencyFundPct)
	fmt.Fprintf(b, "  Committed SIPs: %s/mo   Debt-to-income: %.0f%%\n",
		FormatINR(h.TotalMonthlySIP), h.DebtToIncomeRatio*100)
	for _, a := range h.Advisories {
		fmt.Fprintf(b, "  ! %s\n", a.Message)
	}
	b.WriteString("\n")
}

func writeGoal(b *strings.Builder, n int, g models.Goal, m models.GoalMetrics, lines []models.AllocationLine) {
	fmt.Fprintf(b, "GOAL %d: %s (%d years)\n", n, g.Name, g.Years)
	fmt.Fprintf(b, "  Target today: %s   Inflation-adjusted: %s\n",
		FormatINR(g.TargetAmount), FormatINR(m.InflationAdjustedTarget))
	if g.CurrentSavings > 0 {
		fmt.Fprintf(b, "  Existing savings grow to: %s\n", FormatINR(m.FutureValueOfSavings))
	}
	if m.MonthlySIP == 0 {
		fmt.Fprintf(b, "  Already on track — no further contribution needed.\n")
	} else {
		sipNote := ""
		if g.AnnualStepUpPct > 0 {
			sipNote = fmt.Sprintf(" (stepping up %.0f%%/year)", g.AnnualStepUpPct)
		}
		fmt.Fprintf(b, "  Monthly SIP: %s%s   Total invested: %s\n",
			FormatINR(m.MonthlySIP), sipNote, FormatINR(m.TotalInvested))
		fmt.Fprintf(b, "  Recommended mix:\n")
		for _, line := range lines {
			fmt.Fprintf(b, "    %3d%%  %-18s %s/mo  (%.1f%% post-tax)\n",
				line.Percent, line.Name, FormatINR(line.MonthlyAmount), line.PostTaxReturn)
		}
	}
	for _, a := range m.Advisories {
		fmt.Fprintf(b, "  ! %s\n", a.Message)
	}
	b.WriteString("\n")
}

// FormatINR renders an amount in Indian units: crores, lakhs or thousands.
// Decimal division keeps the displayed figures exact at the shown precision.
func FormatINR(amount float64) string {
	d := decimal.NewFromFloat(amount)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	var s string
	switch {
	case d.GreaterThanOrEqual(decimal.NewFromInt(10000000)):
		s = "₹" + d.DivRound(decimal.NewFromInt(10000000), 2).StringFixed(2) + "Cr"
	case d.GreaterThanOrEqual(decimal.NewFromInt(100000)):
		s = "₹" + d.DivRound(decimal.NewFromInt(100000), 2).StringFixed(2) + "L"
	case d.GreaterThanOrEqual(decimal.NewFromInt(1000)):
		s = "₹" + d.DivRound(decimal.NewFromInt(1000), 1).StringFixed(1) + "K"
	default:
		s = "₹" + d.Round(0).StringFixed(0)
	}
	if neg {
		return "-" + s
	}
	return s
}
