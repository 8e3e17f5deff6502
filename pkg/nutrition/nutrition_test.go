package nutrition

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestAggregateScalesByQuantity(t *testing.T) {
	portions := []Portion{
		{
			Facts: Per100g{
				Calories: decPtr(52),
				Protein:  decPtr(0.3),
				Carbs:    decPtr(14),
				Fat:      decPtr(0.2),
				Fiber:    decPtr(2.4),
			},
			Quantity: dec(200),
		},
	}

	got := Aggregate(portions, 2)

	assert.True(t, dec(104).Equal(got.TotalCalories), "total calories = %s", got.TotalCalories)
	assert.True(t, dec(0.6).Equal(got.TotalProtein))
	assert.True(t, dec(28).Equal(got.TotalCarbs))
	assert.True(t, dec(0.4).Equal(got.TotalFat))
	assert.True(t, dec(4.8).Equal(got.TotalFiber))

	assert.True(t, dec(52).Equal(got.CaloriesPerServing), "per serving = %s", got.CaloriesPerServing)
	assert.True(t, dec(14).Equal(got.CarbsPerServing))
}

func TestAggregateSkipsUnknownFactsPerNutrient(t *testing.T) {
	portions := []Portion{
		{
			// Only calories are known; the rest must not drag totals to nil
			// or block the calories from counting.
			Facts:    Per100g{Calories: decPtr(100)},
			Quantity: dec(50),
		},
		{
			Facts: Per100g{
				Calories: decPtr(200),
				Protein:  decPtr(10),
			},
			Quantity: dec(100),
		},
	}

	got := Aggregate(portions, 1)

	assert.True(t, dec(250).Equal(got.TotalCalories))
	assert.True(t, dec(10).Equal(got.TotalProtein))
	assert.True(t, decimal.Zero.Equal(got.TotalCarbs))
	assert.True(t, decimal.Zero.Equal(got.TotalFiber))
}

func TestAggregateClampsServingsToOne(t *testing.T) {
	portions := []Portion{
		{
			Facts:    Per100g{Calories: decPtr(300)},
			Quantity: dec(100),
		},
	}

	zero := Aggregate(portions, 0)
	one := Aggregate(portions, 1)

	assert.True(t, one.CaloriesPerServing.Equal(zero.CaloriesPerServing))
	assert.True(t, dec(300).Equal(zero.CaloriesPerServing))
}

func TestAggregateEmptyPortions(t *testing.T) {
	got := Aggregate(nil, 4)

	assert.True(t, decimal.Zero.Equal(got.TotalCalories))
	assert.True(t, decimal.Zero.Equal(got.CaloriesPerServing))
}
