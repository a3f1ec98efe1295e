package planner

import (
	"fmt"
	"sort"

	"goalplan/internal/models"
)

// highInterestAPR marks debt worth retiring before investing; anything above
// it out-earns most realistic portfolio returns.
const highInterestAPR = 15.0

// Score point table. The baseline is neutral; each signal moves the score in
// the intuitive direction and the result is clamped to [0,100].
const (
	scoreBaseline = 50

	emergencyFullBonus    = 20 // fund at or above target
	emergencyHalfBonus    = 10 // at least half funded
	emergencyLowPenalty   = 10 // below a quarter funded
	surplusStrongBonus    = 15 // surplus >= 30% of income
	surplusOKBonus        = 8  // surplus >= 15% of income
	surplusNegPenalty     = 15 // no surplus at all
	debtFreeBonus         = 10
	debtLightBonus        = 5  // EMI <= 20% of income
	debtHeavyPenalty      = 5  // EMI 20-40% of income
	debtSeverePenalty     = 15 // EMI > 40% of income
	highInterestPenalty   = 10
	sipAffordableBonus    = 10 // committed SIPs fit within surplus
	sipOverreachPenalty   = 5
)

// ComputeHealth aggregates the profile and every goal's required SIP into a
// health snapshot. The emergency fund target deliberately includes debt
// service: EMIs keep falling due during an income disruption.
func ComputeHealth(profile models.Profile, goals []models.Goal) models.HealthSnapshot {
	totalEMI := profile.TotalMonthlyEMI()
	surplus := profile.MonthlyIncome - profile.MonthlyExpenses - totalEMI
	emergencyRequired := (profile.MonthlyExpenses + totalEMI) * float64(profile.EmergencyFundMonths)

	totalSIP := 0.0
	for _, g := range goals {
		totalSIP += ComputeGoalMetrics(g).MonthlySIP
	}

	snap := models.HealthSnapshot{
		Surplus:               surplus,
		TotalMonthlyEMI:       totalEMI,
		EmergencyFundRequired: emergencyRequired,
		EmergencyFundCurrent:  profile.EmergencyFundCurrent,
		TotalMonthlySIP:       totalSIP,
		HighInterestDebts:     highInterestDebts(profile.Debts),
	}
	if emergencyRequired > 0 {
		snap.EmergencyFundPct = profile.EmergencyFundCurrent / emergencyRequired * 100
	}
	if surplus > 0 {
		snap.SIPAsPctOfSurplus = totalSIP / surplus * 100
	}
	if profile.MonthlyIncome > 0 {
		snap.DebtToIncomeRatio = totalEMI / profile.MonthlyIncome
		snap.SavingsRate = totalSIP / profile.MonthlyIncome * 100
	}

	snap.Score = compositeScore(profile, snap)
	snap.Label = models.ScoreLabel(snap.Score)
	snap.Advisories = healthAdvisories(snap)
	return snap
}

// compositeScore applies the point table to the snapshot
func compositeScore(profile models.Profile, snap models.HealthSnapshot) int {
	score := scoreBaseline

	switch {
	case snap.EmergencyFundPct >= 100:
		score += emergencyFullBonus
	case snap.EmergencyFundPct >= 50:
		score += emergencyHalfBonus
	case snap.EmergencyFundPct < 25:
		score -= emergencyLowPenalty
	}

	surplusRatio := 0.0
	if profile.MonthlyIncome > 0 {
		surplusRatio = snap.Surplus / profile.MonthlyIncome
	}
	switch {
	case snap.Surplus <= 0:
		score -= surplusNegPenalty
	case surplusRatio >= 0.30:
		score += surplusStrongBonus
	case surplusRatio >= 0.15:
		score += surplusOKBonus
	}

	switch {
	case snap.TotalMonthlyEMI == 0:
		score += debtFreeBonus
	case snap.DebtToIncomeRatio <= 0.20:
		score += debtLightBonus
	case snap.DebtToIncomeRatio <= 0.40:
		score -= debtHeavyPenalty
	default:
		score -= debtSeverePenalty
	}

	if len(snap.HighInterestDebts) > 0 {
		score -= highInterestPenalty
	}

	if snap.TotalMonthlySIP <= snap.Surplus {
		score += sipAffordableBonus
	} else {
		score -= sipOverreachPenalty
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// highInterestDebts returns the priority payoff list, highest rate first
func highInterestDebts(debts []models.Debt) []models.Debt {
	var out []models.Debt
	for _, d := range debts {
		if d.InterestRate > highInterestAPR {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].InterestRate > out[j].InterestRate
	})
	return out
}

// healthAdvisories derives the non-blocking insights shown next to the score
func healthAdvisories(snap models.HealthSnapshot) []models.Advisory {
	var out []models.Advisory
	if snap.TotalMonthlySIP > snap.Surplus {
		out = append(out, models.Advisory{
			Code: models.AdvisorySIPExceedsSurplus,
			Message: fmt.Sprintf("Goal contributions of %.0f/month exceed your %.0f/month surplus; stretch timelines or trim targets.",
				snap.TotalMonthlySIP, snap.Surplus),
		})
	}
	if len(snap.HighInterestDebts) > 0 {
		out = append(out, models.Advisory{
			Code: models.AdvisoryHighInterestDebt,
			Message: fmt.Sprintf("%d debt(s) above %.0f%% APR; clearing them beats most investments.",
				len(snap.HighInterestDebts), highInterestAPR),
		})
	}
	return out
}
