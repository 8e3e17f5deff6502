package grocery

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pantry-pilot/domain"
	"pantry-pilot/entities"
	"pantry-pilot/pkg/food"
	"pantry-pilot/pkg/inventory"
	"pantry-pilot/pkg/recipe"
)

type fakeGroceryRepo struct {
	GroceryRepository
	byID           *entities.GroceryEntry
	purchased      []*entities.GroceryEntry
	mergeFoods     map[uuid.UUID]bool
	mergedDeltas   map[uuid.UUID]decimal.Decimal
	added          []*entities.GroceryEntry
	saved          *entities.GroceryEntry
	removedCount   int64
	movedGrocery   []*entities.GroceryEntry
	movedInventory []*entities.InventoryEntry
}

func (f *fakeGroceryRepo) AddEntry(_ context.Context, entry *entities.GroceryEntry) error {
	f.added = append(f.added, entry)
	return nil
}

func (f *fakeGroceryRepo) GetEntryByID(_ context.Context, _ string, _ string) (*entities.GroceryEntry, error) {
	if f.byID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.byID, nil
}

func (f *fakeGroceryRepo) GetPurchasedEntries(_ context.Context, _ string) ([]*entities.GroceryEntry, error) {
	return f.purchased, nil
}

func (f *fakeGroceryRepo) AddQuantityToUnpurchased(_ context.Context, _ string, foodID uuid.UUID, delta decimal.Decimal) (bool, error) {
	if !f.mergeFoods[foodID] {
		return false, nil
	}
	if f.mergedDeltas == nil {
		f.mergedDeltas = make(map[uuid.UUID]decimal.Decimal)
	}
	f.mergedDeltas[foodID] = delta
	return true, nil
}

func (f *fakeGroceryRepo) UpdateEntry(_ context.Context, entry *entities.GroceryEntry) error {
	f.saved = entry
	return nil
}

func (f *fakeGroceryRepo) DeletePurchased(_ context.Context, _ string) (int64, error) {
	return f.removedCount, nil
}

func (f *fakeGroceryRepo) MoveEntriesToInventory(_ context.Context, groceryEntries []*entities.GroceryEntry, inventoryEntries []*entities.InventoryEntry) error {
	f.movedGrocery = groceryEntries
	f.movedInventory = inventoryEntries
	return nil
}

type fakeRecipeRepo struct {
	recipe.RecipeRepository
	rec *entities.Recipe
}

func (f *fakeRecipeRepo) GetRecipeByID(_ context.Context, _ string) (*entities.Recipe, error) {
	if f.rec == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.rec, nil
}

type fakeInventoryRepo struct {
	inventory.InventoryRepository
	fresh []*entities.InventoryEntry
}

func (f *fakeInventoryRepo) GetFreshEntriesByFoodIDs(_ context.Context, _ string, _ []uuid.UUID, _ time.Time) ([]*entities.InventoryEntry, error) {
	return f.fresh, nil
}

type fakeFoodRepo struct {
	food.FoodRepository
	item *entities.FoodItem
}

func (f *fakeFoodRepo) GetFoodItemByID(_ context.Context, _ string) (*entities.FoodItem, error) {
	if f.item == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.item, nil
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func testIngredient(name string, quantity float64, unit string, optional bool) *entities.RecipeIngredient {
	return &entities.RecipeIngredient{
		FoodID:     uuid.New(),
		Quantity:   decimal.NewFromFloat(quantity),
		Unit:       unit,
		IsOptional: optional,
		Food:       &entities.FoodItem{Name: name},
	}
}

func testRecipe(ingredients ...*entities.RecipeIngredient) *entities.Recipe {
	return &entities.Recipe{
		ID:          uuid.New(),
		Name:        "Pancakes",
		Ingredients: ingredients,
	}
}

func TestGenerateFromRecipeCreatesDeficitEntries(t *testing.T) {
	flour := testIngredient("Flour", 500, "g", false)
	eggs := testIngredient("Eggs", 3, "pcs", false)
	rec := testRecipe(flour, eggs)

	groceryRepo := &fakeGroceryRepo{}
	inventoryRepo := &fakeInventoryRepo{fresh: []*entities.InventoryEntry{
		{FoodID: flour.FoodID, Quantity: decimal.NewFromInt(200)},
	}}
	svc := NewGroceryService(groceryRepo, &fakeFoodRepo{}, &fakeRecipeRepo{rec: rec}, inventoryRepo, fixedNow)

	resp, err := svc.GenerateFromRecipe(context.Background(), uuid.NewString(), rec.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "Grocery list updated", resp.Message)
	assert.Equal(t, []string{"Flour", "Eggs"}, resp.ItemsAdded)
	assert.Equal(t, 0, resp.MergedCount)
	assert.Equal(t, "Pancakes", resp.RecipeName)

	require.Len(t, groceryRepo.added, 2)
	assert.True(t, decimal.NewFromInt(300).Equal(groceryRepo.added[0].QuantityNeeded))
	assert.Equal(t, "g", groceryRepo.added[0].Unit)
	assert.Equal(t, "recipe_requirement", groceryRepo.added[0].Reason)
	require.NotNil(t, groceryRepo.added[0].RecipeID)
	assert.Equal(t, rec.ID, *groceryRepo.added[0].RecipeID)
}

func TestGenerateFromRecipeMergesIntoExistingEntry(t *testing.T) {
	flour := testIngredient("Flour", 500, "g", false)
	eggs := testIngredient("Eggs", 3, "pcs", false)
	rec := testRecipe(flour, eggs)

	groceryRepo := &fakeGroceryRepo{mergeFoods: map[uuid.UUID]bool{flour.FoodID: true}}
	svc := NewGroceryService(groceryRepo, &fakeFoodRepo{}, &fakeRecipeRepo{rec: rec}, &fakeInventoryRepo{}, fixedNow)

	resp, err := svc.GenerateFromRecipe(context.Background(), uuid.NewString(), rec.ID.String())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.MergedCount)
	assert.Equal(t, []string{"Eggs"}, resp.ItemsAdded)
	require.Len(t, groceryRepo.added, 1)
	assert.True(t, decimal.NewFromInt(500).Equal(groceryRepo.mergedDeltas[flour.FoodID]))
}

func TestGenerateFromRecipeFullyStocked(t *testing.T) {
	flour := testIngredient("Flour", 500, "g", false)
	rec := testRecipe(flour)

	groceryRepo := &fakeGroceryRepo{}
	inventoryRepo := &fakeInventoryRepo{fresh: []*entities.InventoryEntry{
		{FoodID: flour.FoodID, Quantity: decimal.NewFromInt(300)},
		{FoodID: flour.FoodID, Quantity: decimal.NewFromInt(200)},
	}}
	svc := NewGroceryService(groceryRepo, &fakeFoodRepo{}, &fakeRecipeRepo{rec: rec}, inventoryRepo, fixedNow)

	resp, err := svc.GenerateFromRecipe(context.Background(), uuid.NewString(), rec.ID.String())
	require.NoError(t, err)

	assert.Empty(t, groceryRepo.added)
	assert.Equal(t, 0, resp.MergedCount)
	assert.NotNil(t, resp.ItemsAdded)
	assert.Empty(t, resp.ItemsAdded)
}

func TestGenerateFromRecipeIncludesOptionalIngredients(t *testing.T) {
	garnish := testIngredient("Parsley", 10, "g", true)
	rec := testRecipe(garnish)

	groceryRepo := &fakeGroceryRepo{}
	svc := NewGroceryService(groceryRepo, &fakeFoodRepo{}, &fakeRecipeRepo{rec: rec}, &fakeInventoryRepo{}, fixedNow)

	resp, err := svc.GenerateFromRecipe(context.Background(), uuid.NewString(), rec.ID.String())
	require.NoError(t, err)

	assert.Equal(t, []string{"Parsley"}, resp.ItemsAdded)
}

func TestGenerateFromRecipeUnknownRecipe(t *testing.T) {
	svc := NewGroceryService(&fakeGroceryRepo{}, &fakeFoodRepo{}, &fakeRecipeRepo{}, &fakeInventoryRepo{}, fixedNow)

	_, err := svc.GenerateFromRecipe(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestCheckoutMovesPurchasedEntriesToFridge(t *testing.T) {
	userID := uuid.New()
	purchased := []*entities.GroceryEntry{
		{ID: uuid.New(), UserID: userID, FoodID: uuid.New(), QuantityNeeded: decimal.NewFromInt(2), Unit: "l", IsPurchased: true},
		{ID: uuid.New(), UserID: userID, FoodID: uuid.New(), QuantityNeeded: decimal.NewFromInt(6), Unit: "pcs", IsPurchased: true},
	}
	groceryRepo := &fakeGroceryRepo{purchased: purchased}
	svc := NewGroceryService(groceryRepo, &fakeFoodRepo{}, &fakeRecipeRepo{}, &fakeInventoryRepo{}, fixedNow)

	resp, err := svc.Checkout(context.Background(), userID.String())
	require.NoError(t, err)

	assert.Equal(t, "Successfully moved 2 items to your fridge!", resp.Message)
	assert.Equal(t, 2, resp.MovedCount)
	assert.Equal(t, purchased, groceryRepo.movedGrocery)

	require.Len(t, groceryRepo.movedInventory, 2)
	moved := groceryRepo.movedInventory[0]
	assert.Equal(t, purchased[0].FoodID, moved.FoodID)
	assert.True(t, decimal.NewFromInt(2).Equal(moved.Quantity))
	assert.Equal(t, "l", moved.Unit)
	assert.Equal(t, "fridge", moved.StorageLocation)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), moved.PurchaseDate)
	assert.Equal(t, time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC), moved.ExpiryDate)
	assert.Equal(t, "Bought from grocery list on 2025-06-01", moved.Notes)
}

func TestCheckoutWithoutPurchasedEntries(t *testing.T) {
	svc := NewGroceryService(&fakeGroceryRepo{}, &fakeFoodRepo{}, &fakeRecipeRepo{}, &fakeInventoryRepo{}, fixedNow)

	_, err := svc.Checkout(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNoPurchasedEntries)
}

func TestAddEntryDefaultsReasonAndPriority(t *testing.T) {
	foodItem := &entities.FoodItem{ID: uuid.New(), Name: "Milk", Category: "Dairy"}
	groceryRepo := &fakeGroceryRepo{}
	svc := NewGroceryService(groceryRepo, &fakeFoodRepo{item: foodItem}, &fakeRecipeRepo{}, &fakeInventoryRepo{}, fixedNow)

	resp, err := svc.AddEntry(context.Background(), uuid.NewString(), domain.AddGroceryEntryRequest{
		FoodID:         foodItem.ID.String(),
		QuantityNeeded: 1,
		Unit:           "l",
	})
	require.NoError(t, err)

	require.Len(t, groceryRepo.added, 1)
	assert.Equal(t, "dont_have", groceryRepo.added[0].Reason)
	assert.Equal(t, 1, groceryRepo.added[0].Priority)
	assert.Equal(t, "Milk", resp.FoodName)
}

func TestTogglePurchased(t *testing.T) {
	entry := &entities.GroceryEntry{ID: uuid.New(), UserID: uuid.New(), FoodID: uuid.New(), QuantityNeeded: decimal.NewFromInt(1), Unit: "pcs"}
	groceryRepo := &fakeGroceryRepo{byID: entry}
	svc := NewGroceryService(groceryRepo, &fakeFoodRepo{}, &fakeRecipeRepo{}, &fakeInventoryRepo{}, fixedNow)

	resp, err := svc.TogglePurchased(context.Background(), entry.ID.String(), entry.UserID.String())
	require.NoError(t, err)

	assert.True(t, resp.IsPurchased)
	require.NotNil(t, groceryRepo.saved)
	assert.True(t, groceryRepo.saved.IsPurchased)
}

func TestTogglePurchasedNotFound(t *testing.T) {
	svc := NewGroceryService(&fakeGroceryRepo{}, &fakeFoodRepo{}, &fakeRecipeRepo{}, &fakeInventoryRepo{}, fixedNow)

	_, err := svc.TogglePurchased(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrGroceryEntryNotFound)
}

func TestClearPurchased(t *testing.T) {
	svc := NewGroceryService(&fakeGroceryRepo{removedCount: 3}, &fakeFoodRepo{}, &fakeRecipeRepo{}, &fakeInventoryRepo{}, fixedNow)

	resp, err := svc.ClearPurchased(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.RemovedCount)
}
