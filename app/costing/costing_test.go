package costing

import (
	"math/rand"
	"testing"
)

func TestTotalCost_SumsLinesAndAdditionalCosts(t *testing.T) {
	lines := []Line{
		{PurchaseUnit: "g", UnitCost: 0.01, Quantity: 500, Unit: "g"}, // 5.00
		{PurchaseUnit: "kg", UnitCost: 8, Quantity: 250, Unit: "g"},   // 2.00
	}

	nearlyEqual(t, "total", TotalCost(lines, 2, nil), 9)
}

func TestTotalCost_MissingIngredientCostsZero(t *testing.T) {
	lines := []Line{
		{Missing: true, Quantity: 100, Unit: "g"},
		{PurchaseUnit: "un", UnitCost: 1.5, Quantity: 2, Unit: "un"},
	}

	nearlyEqual(t, "total", TotalCost(lines, 0, nil), 3)
}

func TestTotalCost_OrderInvariant(t *testing.T) {
	lines := []Line{
		{PurchaseUnit: "kg", UnitCost: 7, Quantity: 120, Unit: "g"},
		{PurchaseUnit: "l", UnitCost: 4, Quantity: 330, Unit: "ml"},
		{PurchaseUnit: "un", UnitCost: 0.75, Quantity: 12, Unit: "un"},
		{PurchaseUnit: "pct", UnitCost: 3.2, Quantity: 2, Unit: "pct"},
	}

	want := TotalCost(lines, 1.5, nil)
	for i := 0; i < 10; i++ {
		shuffled := make([]Line, len(lines))
		copy(shuffled, lines)
		rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		nearlyEqual(t, "shuffled total", TotalCost(shuffled, 1.5, nil), want)
	}
}

func TestTotalCost_Idempotent(t *testing.T) {
	lines := []Line{{PurchaseUnit: "kg", UnitCost: 9, Quantity: 400, Unit: "g"}}

	first := TotalCost(lines, 2.5, nil)
	second := TotalCost(lines, 2.5, nil)
	nearlyEqual(t, "repeated total", second, first)
}

func TestSubRecipe_Proration(t *testing.T) {
	sub := &SubRecipe{TotalCost: 30, Yield: "10 fatias", Portions: 3}
	nearlyEqual(t, "total", TotalCost(nil, 0, sub), 9)
}

func TestSubRecipe_NonNumericYieldContributesZero(t *testing.T) {
	sub := &SubRecipe{TotalCost: 30, Yield: "uma forma grande", Portions: 3}
	nearlyEqual(t, "total", TotalCost(nil, 5, sub), 5)
}

func TestNumericYield(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"10", 10, true},
		{"10 fatias", 10, true},
		{"8,5 porções", 8.5, true},
		{"uma forma", 0, false},
		{"", 0, false},
		{"0", 0, false},
		{"-2 fatias", 0, false},
	}

	for _, tc := range cases {
		got, ok := NumericYield(tc.in)
		if ok != tc.ok {
			t.Errorf("NumericYield(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok {
			nearlyEqual(t, "yield "+tc.in, got, tc.want)
		}
	}
}

func TestComputePrices(t *testing.T) {
	p := ComputePrices(7, 35, DefaultResaleDiscount)

	nearlyEqual(t, "sale", p.Sale, 9.45)
	nearlyEqual(t, "resale", p.Resale, 9.45*0.85)
}

func TestComputePrices_MarginRecoverable(t *testing.T) {
	// Re-deriving the margin from the sale price recovers the input.
	for _, margin := range []float64{0, 12.5, 35, 100} {
		cost := 7.0
		p := ComputePrices(cost, margin, DefaultResaleDiscount)
		recovered := (p.Sale/cost - 1) * 100
		nearlyEqual(t, "recovered margin", recovered, margin)
	}
}

func TestComputePrices_EndToEndScenario(t *testing.T) {
	// Sugar: 10.00 buys 1000 g, so 500 g used costs 5.00.
	// Additional cost 2.00 and margin 35% give total 7.00, sale 9.45.
	lines := []Line{{PurchaseUnit: "g", UnitCost: 10.0 / 1000.0, Quantity: 500, Unit: "g"}}
	total := TotalCost(lines, 2, nil)
	nearlyEqual(t, "total", total, 7)

	p := ComputePrices(total, 35, DefaultResaleDiscount)
	nearlyEqual(t, "sale", p.Sale, 9.45)
	nearlyEqual(t, "resale", p.Resale, 8.0325)
}
