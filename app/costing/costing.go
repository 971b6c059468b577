// Package costing implements the recipe costing and pricing rules:
// ingredient cost conversion, recipe cost roll-up with sub-recipe
// proration, and sale/resale price derivation.
package costing

import (
	"strconv"
	"strings"
)

// DefaultResaleDiscount is the factor applied to the sale price to get
// the reseller price. Overridable via configuration.
const DefaultResaleDiscount = 0.85

// DefaultProfitMargin is the percent margin applied to new recipes.
const DefaultProfitMargin = 35.0

// Line carries the inputs needed to cost one recipe ingredient line.
type Line struct {
	PurchaseUnit string  // Unit the ingredient is bought in
	UnitCost     float64 // Cost of one purchase unit
	Quantity     float64 // Amount used, in Unit
	Unit         string  // Unit the quantity is declared in
	Missing      bool    // Line references no known ingredient
}

// Cost returns the cost of the line. A line whose ingredient is missing
// costs zero rather than failing the whole roll-up.
func (l Line) Cost() float64 {
	if l.Missing {
		return 0
	}
	return ConvertedCost(l.PurchaseUnit, l.UnitCost, l.Quantity, l.Unit)
}

// SubRecipe carries the inputs for prorating a component recipe.
type SubRecipe struct {
	TotalCost float64
	Yield     string  // Free text; must parse as a number for proration
	Portions  float64 // Portions consumed by the parent recipe
}

// Contribution returns the prorated cost of the consumed portions.
// A yield that does not parse as a positive number makes proration
// undefined and contributes zero.
func (s SubRecipe) Contribution() float64 {
	yield, ok := NumericYield(s.Yield)
	if !ok || s.Portions <= 0 {
		return 0
	}
	return s.TotalCost / yield * s.Portions
}

// NumericYield extracts a positive numeric yield from the free-text
// rendimento field. "10" and "10 fatias" both yield 10.
func NumericYield(yield string) (float64, bool) {
	fields := strings.Fields(strings.TrimSpace(yield))
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// TotalCost rolls up a recipe: the sum of its line costs, flat
// additional costs, and the sub-recipe contribution if any.
// The result is independent of line order and idempotent.
func TotalCost(lines []Line, additionalCosts float64, sub *SubRecipe) float64 {
	total := additionalCosts
	for _, l := range lines {
		total += l.Cost()
	}
	if sub != nil {
		total += sub.Contribution()
	}
	return total
}

// Prices holds the derived price pair for a recipe or product.
type Prices struct {
	Sale   float64
	Resale float64
}

// ComputePrices derives sale and resale prices from a total cost, a
// percent margin, and the resale discount factor.
func ComputePrices(totalCost, marginPercent, resaleDiscount float64) Prices {
	sale := totalCost * (1 + marginPercent/100)
	return Prices{
		Sale:   sale,
		Resale: sale * resaleDiscount,
	}
}
