package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry-pilot/entities"
)

func testRecipe(name string, ingredients ...*entities.RecipeIngredient) *entities.Recipe {
	return &entities.Recipe{
		ID:          uuid.New(),
		Name:        name,
		Ingredients: ingredients,
	}
}

func testIngredient(foodID uuid.UUID, name string, optional bool) *entities.RecipeIngredient {
	return &entities.RecipeIngredient{
		ID:         uuid.New(),
		FoodID:     foodID,
		IsOptional: optional,
		Food:       &entities.FoodItem{ID: foodID, Name: name},
	}
}

func TestScoreRecipesFullMatch(t *testing.T) {
	milk, eggs := uuid.New(), uuid.New()
	r := testRecipe("omelette",
		testIngredient(milk, "Milk", false),
		testIngredient(eggs, "Eggs", false),
	)
	available := map[uuid.UUID]bool{milk: true, eggs: true}

	scored := scoreRecipes([]*entities.Recipe{r}, available, nil, defaultMinScore, 10)

	require.Len(t, scored, 1)
	assert.Equal(t, 100.0, scored[0].matchScore)
	assert.Equal(t, 2, scored[0].availableCount)
	assert.Equal(t, 2, scored[0].totalCount)
	assert.Empty(t, scored[0].missingIngredients)
	assert.Equal(t, 0, scored[0].requiredMissing)
	assert.False(t, scored[0].usesExpiring)
}

func TestScoreRecipesExpiringBonusCapped(t *testing.T) {
	milk := uuid.New()
	r := testRecipe("milkshake", testIngredient(milk, "Milk", false))
	available := map[uuid.UUID]bool{milk: true}
	expiring := map[uuid.UUID]bool{milk: true}

	scored := scoreRecipes([]*entities.Recipe{r}, available, expiring, defaultMinScore, 10)

	require.Len(t, scored, 1)
	assert.Equal(t, 110.0, scored[0].matchScore)
	assert.True(t, scored[0].usesExpiring)
}

func TestScoreRecipesDropsBelowMinScore(t *testing.T) {
	milk, eggs, flour := uuid.New(), uuid.New(), uuid.New()
	r := testRecipe("pancakes",
		testIngredient(milk, "Milk", false),
		testIngredient(eggs, "Eggs", false),
		testIngredient(flour, "Flour", false),
	)
	// One of three ingredients = 33.33, under the default threshold.
	available := map[uuid.UUID]bool{milk: true}

	scored := scoreRecipes([]*entities.Recipe{r}, available, nil, defaultMinScore, 10)
	assert.Empty(t, scored)

	scored = scoreRecipes([]*entities.Recipe{r}, available, nil, 0, 10)
	require.Len(t, scored, 1)
	assert.Equal(t, 33.33, scored[0].matchScore)
}

func TestScoreRecipesOptionalIngredients(t *testing.T) {
	milk, herbs := uuid.New(), uuid.New()
	r := testRecipe("porridge",
		testIngredient(milk, "Milk", false),
		testIngredient(herbs, "Fresh Herbs", true),
	)
	available := map[uuid.UUID]bool{milk: true}

	scored := scoreRecipes([]*entities.Recipe{r}, available, nil, defaultMinScore, 10)

	require.Len(t, scored, 1)
	// The optional ingredient is missing but the recipe is still cookable.
	assert.Equal(t, 0, scored[0].requiredMissing)
	assert.Equal(t, []string{"Fresh Herbs"}, scored[0].missingIngredients)
	assert.Equal(t, 1, scored[0].availableCount)
	assert.Equal(t, 50.0, scored[0].matchScore)
}

func TestScoreRecipesSkipsRecipesWithoutIngredients(t *testing.T) {
	scored := scoreRecipes([]*entities.Recipe{testRecipe("empty")}, nil, nil, 0, 10)
	assert.Empty(t, scored)
}

func TestScoreRecipesOrdering(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	// Cookable, nothing expiring, perfect score.
	cookable := testRecipe("cookable", testIngredient(a, "A", false))
	// Cookable and uses expiring stock; must outrank the plain cookable
	// one despite the same base availability.
	urgent := testRecipe("urgent", testIngredient(b, "B", false))
	// Missing a required ingredient, high score otherwise.
	incomplete := testRecipe("incomplete",
		testIngredient(a, "A", false),
		testIngredient(b, "B", false),
		testIngredient(c, "C", false),
		testIngredient(d, "D", false),
	)

	available := map[uuid.UUID]bool{a: true, b: true, c: true}
	expiring := map[uuid.UUID]bool{b: true}

	scored := scoreRecipes([]*entities.Recipe{incomplete, cookable, urgent}, available, expiring, 40, 10)

	require.Len(t, scored, 3)
	assert.Equal(t, "urgent", scored[0].recipe.Name)
	assert.Equal(t, "cookable", scored[1].recipe.Name)
	assert.Equal(t, "incomplete", scored[2].recipe.Name)
	assert.Equal(t, 1, scored[2].requiredMissing)
	assert.Equal(t, []string{"D"}, scored[2].missingIngredients)
}

func TestScoreRecipesLimitAppliedAfterSort(t *testing.T) {
	a := uuid.New()
	available := map[uuid.UUID]bool{a: true}

	// "best" sorts first even though it is passed last, so a limit of 1
	// must keep it rather than the first recipe scored.
	worse := testRecipe("worse", testIngredient(a, "A", false), testIngredient(uuid.New(), "X", false))
	best := testRecipe("best", testIngredient(a, "A", false))

	scored := scoreRecipes([]*entities.Recipe{worse, best}, available, nil, 40, 1)

	require.Len(t, scored, 1)
	assert.Equal(t, "best", scored[0].recipe.Name)
}
