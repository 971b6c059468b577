package costing

import "strings"

// Purchase units accepted on ingredients. Recipe lines additionally use
// "caixa" as an alias spelling for cx.
const (
	UnitGram       = "g"
	UnitKilogram   = "kg"
	UnitMilliliter = "ml"
	UnitLiter      = "l"
	UnitPiece      = "un"
	UnitDozen      = "dz"
	UnitBox        = "cx"
	UnitPack       = "pct"
)

var validPurchaseUnits = map[string]bool{
	UnitGram:       true,
	UnitKilogram:   true,
	UnitMilliliter: true,
	UnitLiter:      true,
	UnitPiece:      true,
	UnitDozen:      true,
	UnitBox:        true,
	UnitPack:       true,
}

// NormalizeUnit lowercases and trims a unit label so "L" and "l" compare
// equal, and maps "caixa" onto cx.
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "caixa" {
		return UnitBox
	}
	return u
}

// IsValidPurchaseUnit reports whether unit is one of the accepted
// purchase units.
func IsValidPurchaseUnit(unit string) bool {
	return validPurchaseUnits[NormalizeUnit(unit)]
}

// ConversionFactor returns the multiplier that expresses quantity (given
// in lineUnit) in purchase units. Only the kg/g and l/ml pairs have a
// real conversion; any other mismatch treats the quantity as already
// being in purchase units.
func ConversionFactor(purchaseUnit, lineUnit string) float64 {
	pu := NormalizeUnit(purchaseUnit)
	lu := NormalizeUnit(lineUnit)

	switch {
	case pu == lu:
		return 1
	case pu == UnitKilogram && lu == UnitGram:
		return 1.0 / 1000.0
	case pu == UnitLiter && lu == UnitMilliliter:
		return 1.0 / 1000.0
	default:
		return 1
	}
}

// ConvertedCost prices a requested quantity of an ingredient. unitCost
// is the cost of one purchase unit; quantity is expressed in lineUnit.
// Zero or negative quantities cost nothing.
func ConvertedCost(purchaseUnit string, unitCost, quantity float64, lineUnit string) float64 {
	if quantity <= 0 {
		return 0
	}
	return unitCost * quantity * ConversionFactor(purchaseUnit, lineUnit)
}
