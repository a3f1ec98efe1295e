// Package planner implements the goal planning engine: time-value-of-money
// math, per-goal metrics, asset allocation, health scoring and stress
// scenarios. Every function is a pure computation over validated inputs;
// the package holds no state and performs no I/O.
package planner

import "math"

// FutureValue compounds a present amount annually over the given horizon.
// annualRate is a fraction (0.06 for 6%).
func FutureValue(presentAmount, annualRate float64, years int) float64 {
	if years <= 0 {
		return presentAmount
	}
	return presentAmount * math.Pow(1+annualRate, float64(years))
}

// SolveSIP solves the future-value-of-annuity-due equation for the monthly
// payment that reaches target after numMonths at the given monthly rate.
// Payments land at the start of each month, so each one earns a full month
// of growth. A zero rate degenerates to straight division.
func SolveSIP(target, monthlyRate float64, numMonths int) float64 {
	if target <= 0 || numMonths <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return target / float64(numMonths)
	}
	factor := (math.Pow(1+monthlyRate, float64(numMonths)) - 1) / monthlyRate * (1 + monthlyRate)
	return target / factor
}

// AnnuityDueFV returns the corpus built by a constant monthly payment over
// numMonths, the inverse of SolveSIP.
func AnnuityDueFV(payment, monthlyRate float64, numMonths int) float64 {
	if numMonths <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return payment * float64(numMonths)
	}
	return payment * (math.Pow(1+monthlyRate, float64(numMonths)) - 1) / monthlyRate * (1 + monthlyRate)
}

// SolveSteppedSIP finds the starting monthly payment for a schedule that
// steps up by stepUpRate (fraction) every 12 months. There is no closed
// form: simulate a unit SIP forward, then scale the target by the corpus
// a unit SIP produces.
func SolveSteppedSIP(target, monthlyRate float64, years int, stepUpRate float64) float64 {
	if target <= 0 || years <= 0 {
		return 0
	}
	unitCorpus := steppedCorpus(1, monthlyRate, years, stepUpRate)
	if unitCorpus <= 0 {
		return 0
	}
	return target / unitCorpus
}

// steppedCorpus simulates monthly annuity-due contributions with an annual
// step-up and returns the final corpus
func steppedCorpus(startingSIP, monthlyRate float64, years int, stepUpRate float64) float64 {
	corpus := 0.0
	contribution := startingSIP
	for year := 0; year < years; year++ {
		if year > 0 {
			contribution *= 1 + stepUpRate
		}
		for m := 0; m < 12; m++ {
			corpus = (corpus + contribution) * (1 + monthlyRate)
		}
	}
	return corpus
}
