package models

import "fmt"

// AssetClass identifies one investable instrument category
type AssetClass string

const (
	AssetLargeCap     AssetClass = "large-cap"
	AssetMidCap       AssetClass = "mid-cap"
	AssetSmallCap     AssetClass = "small-cap"
	AssetDebtFund     AssetClass = "debt-fund"
	AssetFixedDeposit AssetClass = "fixed-deposit"
	AssetELSS         AssetClass = "elss"
	AssetPPF          AssetClass = "ppf"
	AssetNPS          AssetClass = "nps"
)

// ParseAssetClass converts a string to an AssetClass, rejecting unknown values
func ParseAssetClass(s string) (AssetClass, error) {
	switch AssetClass(s) {
	case AssetLargeCap, AssetMidCap, AssetSmallCap, AssetDebtFund,
		AssetFixedDeposit, AssetELSS, AssetPPF, AssetNPS:
		return AssetClass(s), nil
	}
	return "", fmt.Errorf("unknown asset class %q", s)
}

// TaxTreatment determines how an asset class's nominal return is haircut
type TaxTreatment string

const (
	TaxExempt TaxTreatment = "exempt" // EEE instruments, full nominal return
	TaxEquity TaxTreatment = "equity" // LTCG drag, flat haircut
	TaxSlab   TaxTreatment = "slab"   // taxed at the marginal income rate
)

// AllocationLine is one row of a goal's recommended investment mix
type AllocationLine struct {
	AssetClass    AssetClass `json:"asset_class"`
	Name          string     `json:"name"`
	Percent       int        `json:"percent"` // integer, lines sum to exactly 100
	MonthlyAmount float64    `json:"monthly_amount"`
	PostTaxReturn float64    `json:"post_tax_return"` // percent per annum after tax drag
	RiskLabel     string     `json:"risk_label"`
	Platforms     []string   `json:"platforms,omitempty"`
}
