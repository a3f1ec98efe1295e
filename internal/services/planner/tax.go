package planner

// taxSlab is one marginal income-tax bracket. Upper bound of the last slab
// is zero, meaning unbounded.
type taxSlab struct {
	upTo float64
	rate float64
}

// incomeTaxSlabs approximates the new-regime slab table on annual income.
// The allocation engine only needs the marginal rate, so standard deduction
// and cess are ignored.
var incomeTaxSlabs = []taxSlab{
	{upTo: 300000, rate: 0},
	{upTo: 700000, rate: 0.05},
	{upTo: 1000000, rate: 0.10},
	{upTo: 1200000, rate: 0.15},
	{upTo: 1500000, rate: 0.20},
	{upTo: 0, rate: 0.30},
}

// equityLTCGDrag is the flat haircut applied to equity-taxed returns to
// approximate long-term capital gains drag at redemption.
const equityLTCGDrag = 0.08

// MarginalTaxRate returns the marginal rate (fraction) for the slab the
// given annual income falls into
func MarginalTaxRate(annualIncome float64) float64 {
	if annualIncome <= 0 {
		return 0
	}
	for _, slab := range incomeTaxSlabs {
		if slab.upTo > 0 && annualIncome <= slab.upTo {
			return slab.rate
		}
	}
	return incomeTaxSlabs[len(incomeTaxSlabs)-1].rate
}
