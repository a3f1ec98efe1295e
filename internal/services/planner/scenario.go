package planner

import (
	"fmt"
	"math"

	"goalplan/internal/models"
)

// Scenario parameters. Each stress perturbs one assumption by a fixed
// amount; floors keep the mutated goal well-formed.
const (
	missedMonths       = 6
	returnShockDelta   = 5.0 // percentage points removed
	returnFloor        = 4.0
	horizonShockYears  = 2
	inflationShockDelta = 2.0
)

// RunScenario recomputes the goal's SIP under one stressed assumption and
// reports the delta versus baseline. The input goal is never mutated; every
// stress works on a copy fed back through the metrics calculator.
func RunScenario(goal models.Goal, kind models.ScenarioKind) (models.ScenarioResult, error) {
	baseline := ComputeGoalMetrics(goal)

	var (
		stressedSIP float64
		label       string
		message     string
	)

	switch kind {
	case models.ScenarioMissedContributions:
		stressedSIP = missedContributionsSIP(goal, baseline)
		label = fmt.Sprintf("Miss first %d months", missedMonths)
		message = fmt.Sprintf("Skipping the first %d contributions means the remaining months must also recover the lost compounding.", missedMonths)

	case models.ScenarioReturnShock:
		stressed := goal
		stressed.ExpectedReturn = math.Max(returnFloor, goal.ExpectedReturn-returnShockDelta)
		stressedSIP = ComputeGoalMetrics(stressed).MonthlySIP
		label = fmt.Sprintf("Returns %.0fpp lower", returnShockDelta)
		message = fmt.Sprintf("If returns drop to %.1f%%, the same target needs a larger contribution.", stressed.ExpectedReturn)

	case models.ScenarioShortenedHorizon:
		stressed := goal
		stressed.Years = goal.Years - horizonShockYears
		if stressed.Years < 1 {
			stressed.Years = 1
		}
		stressedSIP = ComputeGoalMetrics(stressed).MonthlySIP
		label = fmt.Sprintf("%d years sooner", horizonShockYears)
		message = fmt.Sprintf("Needing the money in %d years leaves less time for compounding.", stressed.Years)

	case models.ScenarioInflationShock:
		stressed := goal
		stressed.InflationRate = goal.InflationRate + inflationShockDelta
		stressedSIP = ComputeGoalMetrics(stressed).MonthlySIP
		label = fmt.Sprintf("Inflation %.0fpp higher", inflationShockDelta)
		message = fmt.Sprintf("At %.1f%% inflation the target itself grows faster than planned.", stressed.InflationRate)

	default:
		return models.ScenarioResult{}, fmt.Errorf("unknown scenario kind %q", kind)
	}

	return models.ScenarioResult{
		Kind:        kind,
		Label:       label,
		BaselineSIP: baseline.MonthlySIP,
		StressedSIP: stressedSIP,
		SIPDelta:    math.Max(0, stressedSIP-baseline.MonthlySIP),
		Message:     message,
	}, nil
}

// RunAllScenarios evaluates every scenario kind against the goal
func RunAllScenarios(goal models.Goal) []models.ScenarioResult {
	kinds := models.AllScenarioKinds()
	results := make([]models.ScenarioResult, 0, len(kinds))
	for _, kind := range kinds {
		res, err := RunScenario(goal, kind)
		if err != nil {
			continue
		}
		results = append(results, res)
	}
	return results
}

// missedContributionsSIP computes the catch-up SIP when the first n months
// are skipped: the missed payments' value, compounded over the months that
// remain, must be recovered on top of the baseline contribution.
func missedContributionsSIP(goal models.Goal, baseline models.GoalMetrics) float64 {
	if baseline.MonthlySIP == 0 {
		return 0
	}
	months := goal.Years * 12
	remainingMonths := months - missedMonths
	if remainingMonths < 1 {
		remainingMonths = 1
	}

	monthlyRate := goal.ExpectedReturn / 100 / 12
	missedValue := AnnuityDueFV(baseline.MonthlySIP, monthlyRate, missedMonths) *
		math.Pow(1+monthlyRate, float64(remainingMonths))

	return baseline.MonthlySIP + SolveSIP(missedValue, monthlyRate, remainingMonths)
}
