package planner

import (
	"math"

	"goalplan/internal/models"
)

// inflationNearReturnGap flags goals whose expected return barely clears
// inflation; below this gap real growth is close to zero.
const inflationNearReturnGap = 1.0

// ComputeGoalMetrics derives all figures for one goal. Pure function of the
// goal record: calling it twice with the same goal yields identical results.
func ComputeGoalMetrics(goal models.Goal) models.GoalMetrics {
	inflated := FutureValue(goal.TargetAmount, goal.InflationRate/100, goal.Years)
	savingsFV := FutureValue(goal.CurrentSavings, goal.ExpectedReturn/100, goal.Years)
	remaining := math.Max(0, inflated-savingsFV)

	monthlyRate := goal.ExpectedReturn / 100 / 12
	months := goal.Years * 12

	var sip float64
	if goal.AnnualStepUpPct > 0 {
		sip = SolveSteppedSIP(remaining, monthlyRate, goal.Years, goal.AnnualStepUpPct/100)
	} else {
		sip = SolveSIP(remaining, monthlyRate, months)
	}

	m := models.GoalMetrics{
		GoalID:                  goal.ID,
		InflationAdjustedTarget: inflated,
		FutureValueOfSavings:    savingsFV,
		RemainingAmountNeeded:   remaining,
		MonthlySIP:              sip,
		TotalInvested:           sip*float64(months) + goal.CurrentSavings,
		YearlyProjection:        projectYears(goal, sip),
	}

	if goal.ExpectedReturn-goal.InflationRate < inflationNearReturnGap {
		m.Advisories = append(m.Advisories, models.Advisory{
			Code:    models.AdvisoryInflationNearReturn,
			Message: "Expected return barely beats inflation; this goal grows little in real terms.",
		})
	}

	return m
}

// projectYears builds the year-by-year convergence series: the invested
// running total, the compounding corpus (existing savings plus monthly
// contributions, stepped up annually when configured), and that year's
// inflated target for charting.
func projectYears(goal models.Goal, startingSIP float64) []models.ProjectionYear {
	if goal.Years <= 0 {
		return nil
	}

	monthlyRate := goal.ExpectedReturn / 100 / 12
	series := make([]models.ProjectionYear, 0, goal.Years)

	invested := goal.CurrentSavings
	corpus := goal.CurrentSavings
	contribution := startingSIP

	for year := 1; year <= goal.Years; year++ {
		if year > 1 && goal.AnnualStepUpPct > 0 {
			contribution *= 1 + goal.AnnualStepUpPct/100
		}
		for m := 0; m < 12; m++ {
			invested += contribution
			corpus = (corpus + contribution) * (1 + monthlyRate)
		}
		series = append(series, models.ProjectionYear{
			Year:               year,
			CumulativeInvested: invested,
			CumulativeValue:    corpus,
			InflatedTarget:     FutureValue(goal.TargetAmount, goal.InflationRate/100, year),
		})
	}

	return series
}
