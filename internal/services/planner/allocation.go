package planner

import (
	"math"

	"goalplan/internal/models"
	"goalplan/internal/services/marketdata"
)

// Allocation tuning. Horizon buckets scale the risk ceiling; the age glide
// shifts equity toward debt past 45; the floors keep every mix diversified.
const (
	shortHorizonEquityCap = 20.0 // max equity % for horizons of 2 years or less
	mediumHorizonFactor   = 0.60 // 3-5 year horizons use this share of the ceiling
	longHorizonFactor     = 0.85 // 6-10 year horizons
	ageGlideStart         = 45
	ageGlideMaxReduction  = 20.0
	equityFloorPct        = 10.0
	debtFloorPct          = 10.0
)

// RecommendAllocation maps a goal, profile and its metrics to an investment
// mix whose integer percentages sum to exactly 100. Class names, nominal
// returns and platforms come from the catalog.
func RecommendAllocation(goal models.Goal, profile models.Profile, metrics models.GoalMetrics, catalog *marketdata.Catalog) []models.AllocationLine {
	equity := equityShare(goal.Years, profile)
	taxShare := taxAdvantagedShare(goal.Years)
	debt := 100 - equity - taxShare
	if debt < debtFloorPct {
		debt = debtFloorPct
		equity = 100 - taxShare - debt
	}

	type slice struct {
		class models.AssetClass
		pct   float64
	}
	var slices []slice
	add := func(class models.AssetClass, pct float64) {
		if pct > 0 {
			slices = append(slices, slice{class: class, pct: pct})
		}
	}

	// Equity sub-split by risk band. Small cap only enters once the equity
	// share itself is meaningful.
	switch profile.RiskTolerance {
	case models.RiskConservative:
		add(models.AssetLargeCap, equity)
	case models.RiskAggressive:
		add(models.AssetLargeCap, equity*0.34)
		add(models.AssetMidCap, equity*0.33)
		add(models.AssetSmallCap, equity*0.33)
	default:
		if equity > 40 {
			add(models.AssetLargeCap, equity*0.55)
			add(models.AssetMidCap, equity*0.35)
			add(models.AssetSmallCap, equity*0.10)
		} else {
			add(models.AssetLargeCap, equity*0.60)
			add(models.AssetMidCap, equity*0.40)
		}
	}

	// Debt sub-split: short horizons blend deposits for liquidity
	if goal.Years <= 3 {
		add(models.AssetFixedDeposit, debt*0.60)
		add(models.AssetDebtFund, debt*0.40)
	} else {
		add(models.AssetDebtFund, debt)
	}

	// Tax-advantaged remainder by regime
	if profile.TaxRegime == models.TaxRegimeOld {
		add(models.AssetELSS, taxShare*0.60)
		add(models.AssetPPF, taxShare*0.40)
	} else {
		add(models.AssetNPS, taxShare*0.50)
		add(models.AssetPPF, taxShare*0.50)
	}

	// Integer rounding with the residual assigned to the first line, so the
	// total is exactly 100 rather than 99 or 101
	percents := make([]int, len(slices))
	sum := 0
	for i, s := range slices {
		percents[i] = int(math.Round(s.pct))
		sum += percents[i]
	}
	if len(percents) > 0 && sum != 100 {
		percents[0] += 100 - sum
	}

	marginalRate := MarginalTaxRate(profile.AnnualIncome())
	lines := make([]models.AllocationLine, 0, len(slices))
	for i, s := range slices {
		if percents[i] <= 0 {
			continue
		}
		info, _ := catalog.Class(s.class)
		lines = append(lines, models.AllocationLine{
			AssetClass:    s.class,
			Name:          info.Name,
			Percent:       percents[i],
			MonthlyAmount: metrics.MonthlySIP * float64(percents[i]) / 100,
			PostTaxReturn: postTaxReturn(info, marginalRate),
			RiskLabel:     info.RiskLabel,
			Platforms:     info.Platforms,
		})
	}
	return lines
}

// equityShare applies the horizon bucket, risk ceiling and age glide
func equityShare(years int, profile models.Profile) float64 {
	ceiling := profile.RiskTolerance.EquityCeiling()

	var equity float64
	switch {
	case years <= 2:
		equity = math.Min(shortHorizonEquityCap, ceiling)
	case years <= 5:
		equity = ceiling * mediumHorizonFactor
	case years <= 10:
		equity = ceiling * longHorizonFactor
	default:
		equity = ceiling
	}

	if profile.Age > ageGlideStart {
		reduction := math.Min(ageGlideMaxReduction, float64(profile.Age-ageGlideStart))
		equity -= reduction
	}
	if equity < equityFloorPct {
		equity = equityFloorPct
	}
	return equity
}

// taxAdvantagedShare reserves a slice for tax-saver instruments; lock-in
// periods make them unsuitable for very short horizons
func taxAdvantagedShare(years int) float64 {
	if years <= 2 {
		return 10
	}
	return 15
}

// postTaxReturn applies the class's tax treatment to its nominal return
func postTaxReturn(info marketdata.ClassInfo, marginalRate float64) float64 {
	switch info.Tax {
	case models.TaxExempt:
		return info.NominalReturn
	case models.TaxEquity:
		return info.NominalReturn * (1 - equityLTCGDrag)
	default:
		return info.NominalReturn * (1 - marginalRate)
	}
}
