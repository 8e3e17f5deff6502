package recipe

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"math"
	"pantry-pilot/domain"
	"pantry-pilot/entities"
	"pantry-pilot/pkg/food"
	"pantry-pilot/pkg/freshness"
	"pantry-pilot/pkg/inventory"
	"pantry-pilot/pkg/nutrition"
	"pantry-pilot/pkg/providers"
	"pantry-pilot/pkg/user"
	"strings"
	"time"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, filter domain.RecipeListFilter) (domain.RecipeListResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string) error
		SearchExternalRecipes(ctx context.Context, filter domain.ExternalRecipeSearchFilter) ([]domain.ExternalRecipeResult, error)
		ImportRecipe(ctx context.Context, req domain.ImportRecipeRequest) (domain.RecipeResponse, error)
		Recommend(ctx context.Context, userID string, filter domain.RecommendationFilter) ([]domain.RecipeRecommendation, error)
		SaveRecipe(ctx context.Context, userID string, recipeID string, req domain.SaveRecipeRequest) (domain.RecipeResponse, error)
		UnsaveRecipe(ctx context.Context, userID string, recipeID string) error
		GetSavedRecipes(ctx context.Context, userID string, filter domain.SavedRecipeListFilter) (domain.SavedRecipeListResponse, error)
		GetPopularRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error)
		GetTrendingRecipes(ctx context.Context, days, limit int) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository    RecipeRepository
		foodRepository      food.FoodRepository
		userRepository      user.UserRepository
		inventoryRepository inventory.InventoryRepository
		edamam              providers.EdamamClient
		now                 func() time.Time
	}
)

const (
	defaultRecipePageSize = 20
	defaultStatsLimit     = 10
	defaultTrendingDays   = 7
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	foodRepository food.FoodRepository,
	userRepository user.UserRepository,
	inventoryRepository inventory.InventoryRepository,
	edamam providers.EdamamClient,
	now func() time.Time,
) RecipeService {
	return &recipeService{
		recipeRepository:    recipeRepository,
		foodRepository:      foodRepository,
		userRepository:      userRepository,
		inventoryRepository: inventoryRepository,
		edamam:              edamam,
		now:                 now,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	servings := req.Servings
	if servings < 1 {
		servings = 1
	}

	recipe := &entities.Recipe{
		Name:             req.Name,
		Description:      req.Description,
		CuisineType:      req.CuisineType,
		MealType:         req.MealType,
		PrepTimeMinutes:  req.PrepTimeMinutes,
		CookTimeMinutes:  req.CookTimeMinutes,
		TotalTimeMinutes: req.PrepTimeMinutes + req.CookTimeMinutes,
		Servings:         servings,
		Instructions:     req.Instructions,
		SourceURL:        req.SourceURL,
		ImageURL:         req.ImageURL,
		DifficultyLevel:  req.DifficultyLevel,
		SpicinessLevel:   req.SpicinessLevel,
		IsVegan:          req.IsVegan,
		IsVegetarian:     req.IsVegetarian,
		IsGlutenFree:     req.IsGlutenFree,
		IsDairyFree:      req.IsDairyFree,
		IsHalal:          req.IsHalal,
		IsKosher:         req.IsKosher,
		IsLowCarb:        req.IsLowCarb,
		IsHighProtein:    req.IsHighProtein,
		DataSource:       "user_custom",
	}

	ingredients, err := s.buildIngredients(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	recipe.Ingredients = ingredients

	applyNutrition(recipe, nutrition.Aggregate(buildPortions(ingredients), servings))

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return recipeResponse(recipe), nil
}

// buildIngredients resolves every requested ingredient against the food
// catalog, so a recipe can never reference a food that does not exist.
func (s *recipeService) buildIngredients(ctx context.Context, reqs []domain.RecipeIngredientRequest) ([]*entities.RecipeIngredient, error) {
	ingredients := make([]*entities.RecipeIngredient, 0, len(reqs))
	for i, ingredientReq := range reqs {
		foodItem, err := s.foodRepository.GetFoodItemByID(ctx, ingredientReq.FoodID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrFoodItemNotFound
			}
			return nil, err
		}

		displayOrder := i
		if ingredientReq.DisplayOrder != nil {
			displayOrder = *ingredientReq.DisplayOrder
		}

		ingredients = append(ingredients, &entities.RecipeIngredient{
			FoodID:         foodItem.ID,
			Quantity:       decimal.NewFromFloat(ingredientReq.Quantity),
			Unit:           ingredientReq.Unit,
			IngredientNote: ingredientReq.IngredientNote,
			IsOptional:     ingredientReq.IsOptional,
			DisplayOrder:   displayOrder,
			Food:           foodItem,
		})
	}
	return ingredients, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return recipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeListFilter) (domain.RecipeListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = defaultRecipePageSize
	}

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, ListFilter{
		CuisineType:   filter.CuisineType,
		MealType:      filter.MealType,
		MaxTotalTime:  filter.MaxTotalTime,
		IsVegan:       filter.IsVegan,
		IsVegetarian:  filter.IsVegetarian,
		IsGlutenFree:  filter.IsGlutenFree,
		IsDairyFree:   filter.IsDairyFree,
		IsHalal:       filter.IsHalal,
		IsKosher:      filter.IsKosher,
		IsLowCarb:     filter.IsLowCarb,
		IsHighProtein: filter.IsHighProtein,
		Search:        filter.Search,
	}, page, pageSize)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	items := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		items = append(items, recipeResponse(recipe))
	}

	return domain.RecipeListResponse{
		Items:      items,
		TotalCount: count,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((count + int64(pageSize) - 1) / int64(pageSize)),
	}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if recipe.DataSource != "user_custom" {
		return domain.RecipeResponse{}, domain.ErrRecipeNotEditable
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.CuisineType != nil {
		recipe.CuisineType = *req.CuisineType
	}
	if req.MealType != nil {
		recipe.MealType = *req.MealType
	}
	if req.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		recipe.CookTimeMinutes = *req.CookTimeMinutes
	}
	recipe.TotalTimeMinutes = recipe.PrepTimeMinutes + recipe.CookTimeMinutes
	if req.Servings != nil && *req.Servings > 0 {
		recipe.Servings = *req.Servings
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.SourceURL != nil {
		recipe.SourceURL = *req.SourceURL
	}
	if req.ImageURL != nil {
		recipe.ImageURL = *req.ImageURL
	}
	if req.DifficultyLevel != nil {
		recipe.DifficultyLevel = *req.DifficultyLevel
	}
	if req.SpicinessLevel != nil {
		recipe.SpicinessLevel = *req.SpicinessLevel
	}
	if req.IsVegan != nil {
		recipe.IsVegan = *req.IsVegan
	}
	if req.IsVegetarian != nil {
		recipe.IsVegetarian = *req.IsVegetarian
	}
	if req.IsGlutenFree != nil {
		recipe.IsGlutenFree = *req.IsGlutenFree
	}
	if req.IsDairyFree != nil {
		recipe.IsDairyFree = *req.IsDairyFree
	}
	if req.IsHalal != nil {
		recipe.IsHalal = *req.IsHalal
	}
	if req.IsKosher != nil {
		recipe.IsKosher = *req.IsKosher
	}
	if req.IsLowCarb != nil {
		recipe.IsLowCarb = *req.IsLowCarb
	}
	if req.IsHighProtein != nil {
		recipe.IsHighProtein = *req.IsHighProtein
	}

	if req.Ingredients != nil {
		ingredients, err := s.buildIngredients(ctx, *req.Ingredients)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		for _, ingredient := range ingredients {
			ingredient.RecipeID = recipe.ID
		}
		if err := s.recipeRepository.ReplaceIngredients(ctx, recipe.ID, ingredients); err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.Ingredients = ingredients
	}

	if req.Ingredients != nil || req.Servings != nil {
		applyNutrition(recipe, nutrition.Aggregate(buildPortions(recipe.Ingredients), recipe.Servings))
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return recipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.DataSource != "user_custom" {
		return domain.ErrRecipeNotEditable
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) SearchExternalRecipes(ctx context.Context, filter domain.ExternalRecipeSearchFilter) ([]domain.ExternalRecipeResult, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	params := providers.RecipeSearchParams{
		Query:       filter.Query,
		Diet:        filter.Diet,
		CuisineType: filter.CuisineType,
		MealType:    filter.MealType,
		Calories:    filter.Calories,
	}
	if filter.Health != "" {
		params.Health = strings.Split(filter.Health, ",")
	}

	recipes, err := s.edamam.SearchRecipes(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(recipes) > limit {
		recipes = recipes[:limit]
	}

	results := make([]domain.ExternalRecipeResult, 0, len(recipes))
	for _, r := range recipes {
		results = append(results, domain.ExternalRecipeResult{
			RecipeName:       r.Label,
			ImageURL:         r.Image,
			SourceURL:        r.URL,
			Calories:         math.Round(r.Calories),
			Servings:         int(r.Yield),
			IngredientsCount: len(r.Ingredients),
			DietLabels:       append(append([]string{}, r.DietLabels...), r.HealthLabels...),
			ImportURI:        r.URI,
		})
	}
	return results, nil
}

func (s *recipeService) ImportRecipe(ctx context.Context, req domain.ImportRecipeRequest) (domain.RecipeResponse, error) {
	existing, err := s.recipeRepository.GetRecipeByEdamamURI(ctx, req.EdamamURI)
	if err == nil {
		return s.GetRecipeByID(ctx, existing.ID.String())
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RecipeResponse{}, err
	}

	edamamRecipe, err := s.edamam.FetchRecipeByURI(ctx, req.EdamamURI)
	if err != nil {
		if errors.Is(err, providers.ErrRecipeNotFound) {
			return domain.RecipeResponse{}, domain.ErrExternalRecipeLookup
		}
		return domain.RecipeResponse{}, err
	}

	recipe := recipeFromEdamam(req.EdamamURI, edamamRecipe)

	ingredients, err := s.resolveEdamamIngredients(ctx, edamamRecipe.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	recipe.Ingredients = ingredients

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return recipeResponse(recipe), nil
}

// resolveEdamamIngredients links each imported ingredient to the local
// catalog by Edamam food id, creating skeleton foods for unknown ones.
// Skeletons carry no nutrition data until a later scan or search fills
// them in.
func (s *recipeService) resolveEdamamIngredients(ctx context.Context, edamamIngredients []providers.EdamamIngredient) ([]*entities.RecipeIngredient, error) {
	ingredients := make([]*entities.RecipeIngredient, 0, len(edamamIngredients))
	for i, ing := range edamamIngredients {
		if ing.FoodID == "" {
			continue
		}

		foodItem, err := s.foodRepository.GetFoodItemByEdamamFoodID(ctx, ing.FoodID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			edamamFoodID := ing.FoodID
			foodItem = &entities.FoodItem{
				EdamamFoodID: &edamamFoodID,
				Name:         ing.Food,
				DataSource:   "edamam",
			}
			if err := s.foodRepository.CreateFoodItem(ctx, foodItem); err != nil {
				return nil, err
			}
		}

		quantity := decimal.NewFromInt(1)
		if ing.Quantity != nil && *ing.Quantity != 0 {
			quantity = decimal.NewFromFloat(*ing.Quantity)
		}

		unit := "count"
		if ing.Measure != nil && *ing.Measure != "" && *ing.Measure != "<unit>" {
			unit = *ing.Measure
		}

		ingredients = append(ingredients, &entities.RecipeIngredient{
			FoodID:         foodItem.ID,
			Quantity:       quantity,
			Unit:           unit,
			IngredientNote: ing.Text,
			DisplayOrder:   i,
			Food:           foodItem,
		})
	}
	return ingredients, nil
}

func (s *recipeService) Recommend(ctx context.Context, userID string, filter domain.RecommendationFilter) ([]domain.RecipeRecommendation, error) {
	profile, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	today := s.now()
	entries, err := s.inventoryRepository.GetFreshEntries(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []domain.RecipeRecommendation{}, nil
	}

	available := make(map[uuid.UUID]bool, len(entries))
	expiring := make(map[uuid.UUID]bool)
	expiringCutoff := today.AddDate(0, 0, freshness.ExpiringSoonDays)
	for _, entry := range entries {
		available[entry.FoodID] = true
		if !entry.ExpiryDate.After(expiringCutoff) {
			expiring[entry.FoodID] = true
		}
	}

	criteria := RecommendationCriteria{
		MealType:     filter.MealType,
		IsVegan:      profile.IsVegan,
		IsVegetarian: profile.IsVegetarian,
		IsGlutenFree: profile.IsGlutenFree,
		IsDairyFree:  profile.IsDairyFree,
		IsHalal:      profile.IsHalal,
		IsKosher:     profile.IsKosher,
	}
	if filter.IsVegan != nil {
		criteria.IsVegan = *filter.IsVegan
	}
	if filter.IsVegetarian != nil {
		criteria.IsVegetarian = *filter.IsVegetarian
	}
	if filter.IsHalal != nil {
		criteria.IsHalal = *filter.IsHalal
	}
	if filter.IsGlutenFree != nil {
		criteria.IsGlutenFree = *filter.IsGlutenFree
	}

	recipes, err := s.recipeRepository.GetRecipesForRecommendation(ctx, criteria)
	if err != nil {
		return nil, err
	}

	minScore := defaultMinScore
	if filter.MinMatchScore != nil {
		minScore = *filter.MinMatchScore
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	scored := scoreRecipes(recipes, available, expiring, minScore, limit)

	recommendations := make([]domain.RecipeRecommendation, 0, len(scored))
	for _, sc := range scored {
		missing := sc.missingIngredients
		if missing == nil {
			missing = []string{}
		}
		recommendations = append(recommendations, domain.RecipeRecommendation{
			Recipe:               recipeResponse(sc.recipe),
			MatchScore:           sc.matchScore,
			AvailableIngredients: sc.availableCount,
			TotalIngredients:     sc.totalCount,
			MissingIngredients:   missing,
			RequiredMissing:      sc.requiredMissing,
			UsesExpiring:         sc.usesExpiring,
		})
	}
	return recommendations, nil
}

func (s *recipeService) SaveRecipe(ctx context.Context, userID string, recipeID string, req domain.SaveRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if err := s.recipeRepository.SaveRecipe(ctx, userID, recipeID, req.Notes); err != nil {
		return domain.RecipeResponse{}, err
	}
	return recipeResponse(recipe), nil
}

// UnsaveRecipe is idempotent: removing a recipe that was never saved is not
// an error.
func (s *recipeService) UnsaveRecipe(ctx context.Context, userID string, recipeID string) error {
	return s.recipeRepository.UnsaveRecipe(ctx, userID, recipeID)
}

func (s *recipeService) GetSavedRecipes(ctx context.Context, userID string, filter domain.SavedRecipeListFilter) (domain.SavedRecipeListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = defaultRecipePageSize
	}

	saved, count, err := s.recipeRepository.GetSavedRecipes(ctx, userID, page, pageSize)
	if err != nil {
		return domain.SavedRecipeListResponse{}, err
	}

	items := make([]domain.SavedRecipeResponse, 0, len(saved))
	for _, entry := range saved {
		if entry.Recipe == nil {
			continue
		}
		items = append(items, domain.SavedRecipeResponse{
			Recipe:  recipeResponse(entry.Recipe),
			Notes:   entry.Notes,
			SavedAt: entry.SavedAt,
		})
	}

	totalPages := int((count + int64(pageSize) - 1) / int64(pageSize))

	return domain.SavedRecipeListResponse{
		Items:      items,
		TotalCount: count,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *recipeService) GetPopularRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error) {
	if limit <= 0 {
		limit = defaultStatsLimit
	}

	recipes, err := s.recipeRepository.GetPopularRecipes(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, recipeResponse(recipe))
	}
	return responses, nil
}

func (s *recipeService) GetTrendingRecipes(ctx context.Context, days, limit int) ([]domain.RecipeResponse, error) {
	if days <= 0 {
		days = defaultTrendingDays
	}
	if limit <= 0 {
		limit = defaultStatsLimit
	}

	since := s.now().AddDate(0, 0, -days)
	recipes, err := s.recipeRepository.GetTrendingRecipes(ctx, since, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, recipeResponse(recipe))
	}
	return responses, nil
}

func recipeFromEdamam(uri string, er *providers.EdamamRecipe) *entities.Recipe {
	servings := int(er.Yield)
	if servings < 1 {
		servings = 1
	}

	cuisineType := "Global"
	if len(er.CuisineType) > 0 {
		cuisineType = er.CuisineType[0]
	}

	mealType := ""
	if len(er.MealType) > 0 {
		mealType = er.MealType[0]
	}

	totalCalories := decimal.NewFromFloat(er.Calories)
	edamamURI := uri

	return &entities.Recipe{
		EdamamRecipeURI:  &edamamURI,
		Name:             er.Label,
		CuisineType:      cuisineType,
		MealType:         mealType,
		TotalTimeMinutes: int(er.TotalTime),
		Servings:         servings,
		SourceURL:        er.URL,
		ImageURL:         er.Image,
		TotalCalories:    &totalCalories,
		IsVegan:          hasHealthLabel(er.HealthLabels, "Vegan"),
		IsVegetarian:     hasHealthLabel(er.HealthLabels, "Vegetarian"),
		IsGlutenFree:     hasHealthLabel(er.HealthLabels, "Gluten-Free"),
		IsDairyFree:      hasHealthLabel(er.HealthLabels, "Dairy-Free"),
		IsHalal:          hasHealthLabel(er.HealthLabels, "Halal"),
		IsKosher:         hasHealthLabel(er.HealthLabels, "Kosher"),
		DataSource:       "edamam",
	}
}

func hasHealthLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func buildPortions(ingredients []*entities.RecipeIngredient) []nutrition.Portion {
	portions := make([]nutrition.Portion, 0, len(ingredients))
	for _, ingredient := range ingredients {
		if ingredient.Food == nil {
			continue
		}
		portions = append(portions, nutrition.Portion{
			Facts: nutrition.Per100g{
				Calories: ingredient.Food.CaloriesPer100g,
				Protein:  ingredient.Food.ProteinPer100g,
				Carbs:    ingredient.Food.CarbsPer100g,
				Fat:      ingredient.Food.FatPer100g,
				Fiber:    ingredient.Food.FiberPer100g,
			},
			Quantity: ingredient.Quantity,
		})
	}
	return portions
}

func applyNutrition(recipe *entities.Recipe, summary nutrition.Summary) {
	recipe.TotalCalories = decimalPtr(summary.TotalCalories)
	recipe.TotalProtein = decimalPtr(summary.TotalProtein)
	recipe.TotalCarbs = decimalPtr(summary.TotalCarbs)
	recipe.TotalFat = decimalPtr(summary.TotalFat)
	recipe.TotalFiber = decimalPtr(summary.TotalFiber)
	recipe.CaloriesPerServing = decimalPtr(summary.CaloriesPerServing)
	recipe.ProteinPerServing = decimalPtr(summary.ProteinPerServing)
	recipe.CarbsPerServing = decimalPtr(summary.CarbsPerServing)
	recipe.FatPerServing = decimalPtr(summary.FatPerServing)
}

func recipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		response := domain.RecipeIngredientResponse{
			ID:             ingredient.ID.String(),
			FoodID:         ingredient.FoodID.String(),
			Quantity:       ingredient.Quantity.InexactFloat64(),
			Unit:           ingredient.Unit,
			IngredientNote: ingredient.IngredientNote,
			IsOptional:     ingredient.IsOptional,
			DisplayOrder:   ingredient.DisplayOrder,
		}
		if ingredient.Food != nil {
			response.FoodName = ingredient.Food.Name
		}
		ingredients = append(ingredients, response)
	}

	return domain.RecipeResponse{
		ID:                 recipe.ID.String(),
		Name:               recipe.Name,
		Description:        recipe.Description,
		CuisineType:        recipe.CuisineType,
		MealType:           recipe.MealType,
		PrepTimeMinutes:    recipe.PrepTimeMinutes,
		CookTimeMinutes:    recipe.CookTimeMinutes,
		TotalTimeMinutes:   recipe.TotalTimeMinutes,
		Servings:           recipe.Servings,
		Instructions:       recipe.Instructions,
		SourceURL:          recipe.SourceURL,
		ImageURL:           recipe.ImageURL,
		DifficultyLevel:    recipe.DifficultyLevel,
		SpicinessLevel:     recipe.SpicinessLevel,
		TotalCalories:      decimalPtrToFloat(recipe.TotalCalories),
		TotalProtein:       decimalPtrToFloat(recipe.TotalProtein),
		TotalCarbs:         decimalPtrToFloat(recipe.TotalCarbs),
		TotalFat:           decimalPtrToFloat(recipe.TotalFat),
		TotalFiber:         decimalPtrToFloat(recipe.TotalFiber),
		CaloriesPerServing: decimalPtrToFloat(recipe.CaloriesPerServing),
		ProteinPerServing:  decimalPtrToFloat(recipe.ProteinPerServing),
		CarbsPerServing:    decimalPtrToFloat(recipe.CarbsPerServing),
		FatPerServing:      decimalPtrToFloat(recipe.FatPerServing),
		IsVegan:            recipe.IsVegan,
		IsVegetarian:       recipe.IsVegetarian,
		IsGlutenFree:       recipe.IsGlutenFree,
		IsDairyFree:        recipe.IsDairyFree,
		IsHalal:            recipe.IsHalal,
		IsKosher:           recipe.IsKosher,
		IsLowCarb:          recipe.IsLowCarb,
		IsHighProtein:      recipe.IsHighProtein,
		DataSource:         recipe.DataSource,
		Ingredients:        ingredients,
		CreatedAt:          recipe.CreatedAt,
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func decimalPtrToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}
