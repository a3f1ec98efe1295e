// Package marketdata serves the static asset-class table and the simulated
// market index snapshot. There is no live feed: figures ship embedded in the
// binary and can be overridden by a user-supplied YAML file.
package marketdata

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"goalplan/internal/models"
)

//go:embed default-catalog.yaml
var defaultCatalogYAML []byte

// ClassInfo describes one investable asset class
type ClassInfo struct {
	Class         models.AssetClass   `yaml:"class" json:"class"`
	Name          string              `yaml:"name" json:"name"`
	NominalReturn float64             `yaml:"nominal_return" json:"nominal_return"` // percent per annum
	RiskLabel     string              `yaml:"risk" json:"risk"`
	Tax           models.TaxTreatment `yaml:"tax" json:"tax"`
	TaxSavingCap  float64             `yaml:"tax_saving_cap,omitempty" json:"tax_saving_cap,omitempty"` // annual 80C/80CCD benefit
	Platforms     []string            `yaml:"platforms,omitempty" json:"platforms,omitempty"`
}

// IndexReturns holds trailing annualized returns for an index
type IndexReturns struct {
	Y1  float64 `yaml:"1yr" json:"1yr"`
	Y3  float64 `yaml:"3yr" json:"3yr"`
	Y5  float64 `yaml:"5yr" json:"5yr"`
	Y10 float64 `yaml:"10yr" json:"10yr"`
}

// IndexQuote is one simulated market index level
type IndexQuote struct {
	Name      string       `yaml:"name" json:"name"`
	Level     float64      `yaml:"level" json:"level"`
	Change    float64      `yaml:"change" json:"change"`
	ChangePct float64      `yaml:"change_pct" json:"change_pct"`
	Returns   IndexReturns `yaml:"returns" json:"returns"`
}

// Catalog bundles the asset classes and index snapshot
type Catalog struct {
	Source  string       `yaml:"source" json:"source"`
	Classes []ClassInfo  `yaml:"classes" json:"classes"`
	Indices []IndexQuote `yaml:"indices" json:"indices"`

	byClass map[models.AssetClass]ClassInfo
}

// Load reads a catalog from the given YAML file, or the embedded default
// when path is empty
func Load(path string) (*Catalog, error) {
	data := defaultCatalogYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = b
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c.byClass = make(map[models.AssetClass]ClassInfo, len(c.Classes))
	for _, info := range c.Classes {
		if _, err := models.ParseAssetClass(string(info.Class)); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := c.byClass[info.Class]; dup {
			return nil, fmt.Errorf("catalog: duplicate class %q", info.Class)
		}
		c.byClass[info.Class] = info
	}

	// Every class the allocation engine can emit must be present
	required := []models.AssetClass{
		models.AssetLargeCap, models.AssetMidCap, models.AssetSmallCap,
		models.AssetDebtFund, models.AssetFixedDeposit,
		models.AssetELSS, models.AssetPPF, models.AssetNPS,
	}
	for _, class := range required {
		if _, ok := c.byClass[class]; !ok {
			return nil, fmt.Errorf("catalog: missing class %q", class)
		}
	}

	return &c, nil
}

// Class returns the info for one asset class
func (c *Catalog) Class(class models.AssetClass) (ClassInfo, bool) {
	info, ok := c.byClass[class]
	return info, ok
}
