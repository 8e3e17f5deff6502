package recipe

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
	"pantry-pilot/pkg/providers"
	"pantry-pilot/pkg/user"
)

type fakeRecipeRepo struct {
	RecipeRepository
	byID                  *entities.Recipe
	byURI                 *entities.Recipe
	forRecommendation     []*entities.Recipe
	recommendationQueried bool
	criteria              RecommendationCriteria
	created               *entities.Recipe
	savedUserID           string
	savedRecipeID         string
	savedNotes            *string
	savedList             []*entities.SavedRecipe
	savedCount            int64
	trendingSince         time.Time
	trendingLimit         int
}

func (f *fakeRecipeRepo) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.created = recipe
	return nil
}

func (f *fakeRecipeRepo) GetRecipeByID(_ context.Context, _ string) (*entities.Recipe, error) {
	if f.byID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.byID, nil
}

func (f *fakeRecipeRepo) GetRecipeByEdamamURI(_ context.Context, _ string) (*entities.Recipe, error) {
	if f.byURI == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.byURI, nil
}

func (f *fakeRecipeRepo) GetRecipesForRecommendation(_ context.Context, criteria RecommendationCriteria) ([]*entities.Recipe, error) {
	f.recommendationQueried = true
	f.criteria = criteria
	return f.forRecommendation, nil
}

func (f *fakeRecipeRepo) SaveRecipe(_ context.Context, userID string, recipeID string, notes *string) error {
	f.savedUserID = userID
	f.savedRecipeID = recipeID
	f.savedNotes = notes
	return nil
}

func (f *fakeRecipeRepo) GetSavedRecipes(_ context.Context, _ string, _, _ int) ([]*entities.SavedRecipe, int64, error) {
	return f.savedList, f.savedCount, nil
}

func (f *fakeRecipeRepo) GetTrendingRecipes(_ context.Context, since time.Time, limit int) ([]*entities.Recipe, error) {
	f.trendingSince = since
	f.trendingLimit = limit
	return nil, nil
}

type fakeUserRepo struct {
	user.UserRepository
	profile *entities.User
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, _ string) (*entities.User, error) {
	if f.profile == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.profile, nil
}

type fakeInventoryRepo struct {
	inventory.InventoryRepository
	fresh []*entities.InventoryEntry
}

func (f *fakeInventoryRepo) GetFreshEntries(_ context.Context, _ string, _ time.Time) ([]*entities.InventoryEntry, error) {
	return f.fresh, nil
}

type fakeFoodRepo struct {
	food.FoodRepository
	byID       *entities.FoodItem
	byEdamamID map[string]*entities.FoodItem
	created    []*entities.FoodItem
}

func (f *fakeFoodRepo) GetFoodItemByID(_ context.Context, _ string) (*entities.FoodItem, error) {
	if f.byID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.byID, nil
}

func (f *fakeFoodRepo) GetFoodItemByEdamamFoodID(_ context.Context, edamamFoodID string) (*entities.FoodItem, error) {
	if item, ok := f.byEdamamID[edamamFoodID]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFoodRepo) CreateFoodItem(_ context.Context, item *entities.FoodItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.created = append(f.created, item)
	return nil
}

type fakeEdamamClient struct {
	providers.EdamamClient
	byURI   *providers.EdamamRecipe
	fetched bool
}

func (f *fakeEdamamClient) FetchRecipeByURI(_ context.Context, _ string) (*providers.EdamamRecipe, error) {
	f.fetched = true
	if f.byURI == nil {
		return nil, providers.ErrRecipeNotFound
	}
	return f.byURI, nil
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func TestCreateRecipeCachesNutrition(t *testing.T) {
	calories := decimal.NewFromInt(100)
	protein := decimal.NewFromInt(10)
	foodItem := &entities.FoodItem{ID: uuid.New(), Name: "Oats", CaloriesPer100g: &calories, ProteinPer100g: &protein}
	recipeRepo := &fakeRecipeRepo{}
	svc := NewRecipeService(recipeRepo, &fakeFoodRepo{byID: foodItem}, &fakeUserRepo{}, &fakeInventoryRepo{}, &fakeEdamamClient{}, fixedNow)

	res, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:     "Porridge",
		Servings: 2,
		Ingredients: []domain.RecipeIngredientRequest{
			{FoodID: foodItem.ID.String(), Quantity: 200, Unit: "g"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, recipeRepo.created)
	require.NotNil(t, recipeRepo.created.TotalCalories)
	assert.True(t, decimal.NewFromInt(200).Equal(*recipeRepo.created.TotalCalories))
	require.NotNil(t, recipeRepo.created.CaloriesPerServing)
	assert.True(t, decimal.NewFromInt(100).Equal(*recipeRepo.created.CaloriesPerServing))

	require.NotNil(t, res.TotalProtein)
	assert.InDelta(t, 20, *res.TotalProtein, 0.001)
	assert.Equal(t, "user_custom", res.DataSource)
	assert.Equal(t, 2, res.Servings)
}

func TestCreateRecipeUnknownIngredient(t *testing.T) {
	svc := NewRecipeService(&fakeRecipeRepo{}, &fakeFoodRepo{}, &fakeUserRepo{}, &fakeInventoryRepo{}, &fakeEdamamClient{}, fixedNow)

	_, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:        "Mystery",
		Ingredients: []domain.RecipeIngredientRequest{{FoodID: uuid.NewString(), Quantity: 1, Unit: "g"}},
	})
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestUpdateRecipeRejectsImportedRecipes(t *testing.T) {
	imported := testRecipe("Imported")
	imported.DataSource = "edamam"
	svc := NewRecipeService(&fakeRecipeRepo{byID: imported}, &fakeFoodRepo{}, &fakeUserRepo{}, &fakeInventoryRepo{}, &fakeEdamamClient{}, fixedNow)

	name := "Renamed"
	_, err := svc.UpdateRecipe(context.Background(), imported.ID.String(), domain.UpdateRecipeRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrRecipeNotEditable)

	err = svc.DeleteRecipe(context.Background(), imported.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotEditable)
}

func TestImportRecipeResolvesIngredients(t *testing.T) {
	knownFood := &entities.FoodItem{ID: uuid.New(), Name: "Chicken Breast"}
	qty := 2.0
	measure := "pound"
	edamamRecipe := &providers.EdamamRecipe{
		Label:        "Roast Chicken",
		Yield:        4,
		Calories:     1800,
		CuisineType:  []string{"french"},
		MealType:     []string{"lunch/dinner"},
		HealthLabels: []string{"Gluten-Free"},
		Ingredients: []providers.EdamamIngredient{
			{Text: "2 pounds of chicken", Quantity: &qty, Measure: &measure, Food: "chicken", FoodID: "food_chicken"},
			{Text: "a pinch of salt", Food: "salt", FoodID: "food_salt"},
			{Text: "water as needed"},
		},
	}

	recipeRepo := &fakeRecipeRepo{}
	foodRepo := &fakeFoodRepo{byEdamamID: map[string]*entities.FoodItem{"food_chicken": knownFood}}
	svc := NewRecipeService(recipeRepo, foodRepo, &fakeUserRepo{}, &fakeInventoryRepo{}, &fakeEdamamClient{byURI: edamamRecipe}, fixedNow)

	res, err := svc.ImportRecipe(context.Background(), domain.ImportRecipeRequest{
		EdamamURI: "http://www.edamam.com/ontologies/edamam.owl#recipe_abc",
	})
	require.NoError(t, err)

	created := recipeRepo.created
	require.NotNil(t, created)
	assert.Equal(t, "Roast Chicken", created.Name)
	assert.Equal(t, "edamam", created.DataSource)
	assert.Equal(t, 4, created.Servings)
	require.NotNil(t, created.EdamamRecipeURI)
	assert.True(t, created.IsGlutenFree)
	assert.False(t, created.IsVegan)

	// The FoodID-less ingredient is dropped; the unknown one gets a
	// skeleton catalog entry.
	require.Len(t, created.Ingredients, 2)
	assert.Equal(t, knownFood.ID, created.Ingredients[0].FoodID)
	assert.True(t, decimal.NewFromFloat(2).Equal(created.Ingredients[0].Quantity))
	assert.Equal(t, "pound", created.Ingredients[0].Unit)

	require.Len(t, foodRepo.created, 1)
	assert.Equal(t, "salt", foodRepo.created[0].Name)
	assert.Equal(t, "edamam", foodRepo.created[0].DataSource)
	assert.True(t, decimal.NewFromInt(1).Equal(created.Ingredients[1].Quantity))
	assert.Equal(t, "count", created.Ingredients[1].Unit)

	assert.Equal(t, "Roast Chicken", res.Name)
}

func TestImportRecipeReturnsExistingForKnownURI(t *testing.T) {
	existing := testRecipe("Already Imported")
	recipeRepo := &fakeRecipeRepo{byURI: existing, byID: existing}
	edamam := &fakeEdamamClient{}
	svc := NewRecipeService(recipeRepo, &fakeFoodRepo{}, &fakeUserRepo{}, &fakeInventoryRepo{}, edamam, fixedNow)

	res, err := svc.ImportRecipe(context.Background(), domain.ImportRecipeRequest{
		EdamamURI: "http://www.edamam.com/ontologies/edamam.owl#recipe_abc",
	})
	require.NoError(t, err)

	assert.Equal(t, existing.ID.String(), res.ID)
	assert.False(t, edamam.fetched)
	assert.Nil(t, recipeRepo.created)
}

func TestImportRecipeUnknownExternal(t *testing.T) {
	svc := NewRecipeService(&fakeRecipeRepo{}, &fakeFoodRepo{}, &fakeUserRepo{}, &fakeInventoryRepo{}, &fakeEdamamClient{}, fixedNow)

	_, err := svc.ImportRecipe(context.Background(), domain.ImportRecipeRequest{
		EdamamURI: "http://www.edamam.com/ontologies/edamam.owl#recipe_missing",
	})
	assert.ErrorIs(t, err, domain.ErrExternalRecipeLookup)
}

func TestRecommendScoresAgainstInventory(t *testing.T) {
	eggs := testIngredient(uuid.New(), "Eggs", false)
	milk := testIngredient(uuid.New(), "Milk", false)
	rec := testRecipe("omelette", eggs, milk)

	userID := uuid.New()
	recipeRepo := &fakeRecipeRepo{forRecommendation: []*entities.Recipe{rec}}
	inventoryRepo := &fakeInventoryRepo{fresh: []*entities.InventoryEntry{
		{FoodID: eggs.FoodID, ExpiryDate: fixedNow().AddDate(0, 0, 2)},
		{FoodID: milk.FoodID, ExpiryDate: fixedNow().AddDate(0, 0, 30)},
	}}
	svc := NewRecipeService(recipeRepo, &fakeFoodRepo{}, &fakeUserRepo{profile: &entities.User{ID: userID}}, inventoryRepo, &fakeEdamamClient{}, fixedNow)

	recs, err := svc.Recommend(context.Background(), userID.String(), domain.RecommendationFilter{})
	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.Equal(t, "omelette", recs[0].Recipe.Name)
	assert.Equal(t, 105.0, recs[0].MatchScore)
	assert.Equal(t, 2, recs[0].AvailableIngredients)
	assert.Equal(t, 2, recs[0].TotalIngredients)
	assert.NotNil(t, recs[0].MissingIngredients)
	assert.Empty(t, recs[0].MissingIngredients)
	assert.True(t, recs[0].UsesExpiring)
}

func TestRecommendEmptyInventoryShortCircuits(t *testing.T) {
	recipeRepo := &fakeRecipeRepo{forRecommendation: []*entities.Recipe{
		testRecipe("anything", testIngredient(uuid.New(), "A", false)),
	}}
	svc := NewRecipeService(recipeRepo, &fakeFoodRepo{}, &fakeUserRepo{profile: &entities.User{}}, &fakeInventoryRepo{}, &fakeEdamamClient{}, fixedNow)

	recs, err := svc.Recommend(context.Background(), uuid.NewString(), domain.RecommendationFilter{})
	require.NoError(t, err)

	assert.NotNil(t, recs)
	assert.Empty(t, recs)
	assert.False(t, recipeRepo.recommendationQueried)
}

func TestRecommendAppliesProfileAndOverrides(t *testing.T) {
	glutenFree := true
	profile := &entities.User{ID: uuid.New(), IsVegan: true, IsHalal: true}
	recipeRepo := &fakeRecipeRepo{}
	inventoryRepo := &fakeInventoryRepo{fresh: []*entities.InventoryEntry{
		{FoodID: uuid.New(), ExpiryDate: fixedNow().AddDate(0, 0, 10)},
	}}
	svc := NewRecipeService(recipeRepo, &fakeFoodRepo{}, &fakeUserRepo{profile: profile}, inventoryRepo, &fakeEdamamClient{}, fixedNow)

	_, err := svc.Recommend(context.Background(), profile.ID.String(), domain.RecommendationFilter{
		MealType:     "dinner",
		IsGlutenFree: &glutenFree,
	})
	require.NoError(t, err)

	assert.Equal(t, "dinner", recipeRepo.criteria.MealType)
	assert.True(t, recipeRepo.criteria.IsVegan)
	assert.True(t, recipeRepo.criteria.IsHalal)
	assert.True(t, recipeRepo.criteria.IsGlutenFree)
	assert.False(t, recipeRepo.criteria.IsKosher)
}

func TestRecommendUnknownUser(t *testing.T) {
	svc := NewRecipeService(&fakeRecipeRepo{}, &fakeFoodRepo{}, &fakeUserRepo{}, &fakeInventoryRepo{}, &fakeEdamamClient{}, fixedNow)

	_, err := svc.Recommend(context.Background(), uuid.NewString(), domain.RecommendationFilter{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSaveRecipeBookmarks(t *testing.T) {
	rec := testRecipe("Keeper")
	recipeRepo := &fakeRecipeRepo{byID: rec}
	svc := NewRecipeService(recipeRepo, &fakeFoodRepo{}, &fakeUserRepo{}, &fakeInventoryRepo{}, &fakeEdamamClient{}, fixedNow)

	notes := "for sunday"
	userID := uuid.NewString()
	res, err := svc.SaveRecipe(context.Background(), userID, rec.ID.String(), domain.SaveRecipeRequest{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, rec.ID.String(), res.ID)
	assert.Equal(t, userID, recipeRepo.savedUserID)
	assert.Equal(t, rec.ID.String(), recipeRepo.savedRecipeID)
	require.NotNil(t, recipeRepo.savedNotes)
	assert.Equal(t, "for sunday", *recipeRepo.savedNotes)
}

func TestSaveRecipeUnknownRecipe(t *testing.T) {
	svc := NewRecipeService(&fakeRecipeRepo{}, &fakeFoodRepo{}, &fakeUserRepo{}, &fakeInventoryRepo{}, &fakeEdamamClient{}, fixedNow)

	_, err := svc.SaveRecipe(context.Background(), uuid.NewString(), uuid.NewString(), domain.SaveRecipeRequest{})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetSavedRecipesSkipsDanglingBookmarks(t *testing.T) {
	rec := testRecipe("Keeper")
	notes := "weeknight favourite"
	savedAt := time.Date(2025, time.May, 20, 8, 0, 0, 0, time.UTC)
	recipeRepo := &fakeRecipeRepo{
		savedList: []*entities.SavedRecipe{
			{RecipeID: rec.ID, Recipe: rec, Notes: &notes, SavedAt: savedAt},
			{RecipeID: uuid.New()}, // recipe deleted out from under the bookmark
		},
		savedCount: 5,
	}
	svc := NewRecipeService(recipeRepo, &fakeFoodRepo{}, &fakeUserRepo{}, &fakeInventoryRepo{}, &fakeEdamamClient{}, fixedNow)

	res, err := svc.GetSavedRecipes(context.Background(), uuid.NewString(), domain.SavedRecipeListFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "Keeper", res.Items[0].Recipe.Name)
	require.NotNil(t, res.Items[0].Notes)
	assert.Equal(t, "weeknight favourite", *res.Items[0].Notes)
	assert.Equal(t, savedAt, res.Items[0].SavedAt)
	assert.Equal(t, int64(5), res.TotalCount)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 3, res.TotalPages)
}

func TestGetTrendingRecipesDefaultsWindow(t *testing.T) {
	recipeRepo := &fakeRecipeRepo{}
	svc := NewRecipeService(recipeRepo, &fakeFoodRepo{}, &fakeUserRepo{}, &fakeInventoryRepo{}, &fakeEdamamClient{}, fixedNow)

	_, err := svc.GetTrendingRecipes(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, fixedNow().AddDate(0, 0, -7), recipeRepo.trendingSince)
	assert.Equal(t, 10, recipeRepo.trendingLimit)
}
