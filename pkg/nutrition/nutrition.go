// Package nutrition aggregates per-100g nutrition facts over recipe
// ingredient portions. Missing facts contribute nothing to the totals
// rather than poisoning the whole aggregate.
package nutrition

import "github.com/shopspring/decimal"

// Per100g holds the nutrition facts of a food per 100 grams.
// Nil means the value is unknown, not zero.
type Per100g struct {
	Calories *decimal.Decimal
	Protein  *decimal.Decimal
	Carbs    *decimal.Decimal
	Fat      *decimal.Decimal
	Fiber    *decimal.Decimal
}

// Portion is one recipe ingredient: its facts and the quantity used,
// in grams.
type Portion struct {
	Facts    Per100g
	Quantity decimal.Decimal
}

// Summary is the aggregated nutrition of a recipe. Totals cover the
// whole recipe, the per-serving values divide by the serving count.
type Summary struct {
	TotalCalories decimal.Decimal
	TotalProtein  decimal.Decimal
	TotalCarbs    decimal.Decimal
	TotalFat      decimal.Decimal
	TotalFiber    decimal.Decimal

	CaloriesPerServing decimal.Decimal
	ProteinPerServing  decimal.Decimal
	CarbsPerServing    decimal.Decimal
	FatPerServing      decimal.Decimal
	FiberPerServing    decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Aggregate sums the portions into a Summary. Each known fact is scaled
// by quantity/100; unknown facts are skipped per nutrient, so a food
// with only calories recorded still contributes its calories. Servings
// below one are treated as one.
func Aggregate(portions []Portion, servings int) Summary {
	var s Summary
	for _, p := range portions {
		factor := p.Quantity.Div(hundred)
		s.TotalCalories = addScaled(s.TotalCalories, p.Facts.Calories, factor)
		s.TotalProtein = addScaled(s.TotalProtein, p.Facts.Protein, factor)
		s.TotalCarbs = addScaled(s.TotalCarbs, p.Facts.Carbs, factor)
		s.TotalFat = addScaled(s.TotalFat, p.Facts.Fat, factor)
		s.TotalFiber = addScaled(s.TotalFiber, p.Facts.Fiber, factor)
	}

	if servings < 1 {
		servings = 1
	}
	div := decimal.NewFromInt(int64(servings))
	s.CaloriesPerServing = s.TotalCalories.Div(div)
	s.ProteinPerServing = s.TotalProtein.Div(div)
	s.CarbsPerServing = s.TotalCarbs.Div(div)
	s.FatPerServing = s.TotalFat.Div(div)
	s.FiberPerServing = s.TotalFiber.Div(div)
	return s
}

func addScaled(total decimal.Decimal, fact *decimal.Decimal, factor decimal.Decimal) decimal.Decimal {
	if fact == nil {
		return total
	}
	return total.Add(fact.Mul(factor))
}
