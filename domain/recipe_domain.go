package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes         = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail    = "recipe retrieved successfully"
	MessageSuccessCreateRecipe       = "recipe created successfully"
	MessageSuccessUpdateRecipe       = "recipe updated successfully"
	MessageSuccessDeleteRecipe       = "recipe deleted successfully"
	MessageSuccessSearchExternal     = "external recipes retrieved successfully"
	MessageSuccessImportRecipe       = "recipe imported successfully"
	MessageSuccessGetRecommendations = "recipe recommendations retrieved successfully"
	MessageSuccessSaveRecipe         = "recipe saved successfully"
	MessageSuccessUnsaveRecipe       = "saved recipe removed successfully"
	MessageSuccessGetSavedRecipes    = "saved recipes retrieved successfully"
	MessageSuccessGetPopularRecipes  = "popular recipes retrieved successfully"
	MessageSuccessGetTrendingRecipes = "trending recipes retrieved successfully"

	MessageFailedGetRecipes         = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail    = "failed to retrieve recipe"
	MessageFailedCreateRecipe       = "failed to create recipe"
	MessageFailedUpdateRecipe       = "failed to update recipe"
	MessageFailedDeleteRecipe       = "failed to delete recipe"
	MessageFailedSearchExternal     = "failed to search external recipes"
	MessageFailedImportRecipe       = "failed to import recipe"
	MessageFailedGetRecommendations = "failed to retrieve recipe recommendations"
	MessageFailedSaveRecipe         = "failed to save recipe"
	MessageFailedUnsaveRecipe       = "failed to remove saved recipe"
	MessageFailedGetSavedRecipes    = "failed to retrieve saved recipes"
	MessageFailedGetPopularRecipes  = "failed to retrieve popular recipes"
	MessageFailedGetTrendingRecipes = "failed to retrieve trending recipes"

	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrRecipeNotEditable    = errors.New("only user-created recipes can be modified")
	ErrExternalRecipeLookup = errors.New("recipe not found in external database")
)

type (
	RecipeIngredientRequest struct {
		FoodID         string  `json:"food_id" validate:"required,uuid"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		Unit           string  `json:"unit" validate:"required"`
		IngredientNote string  `json:"ingredient_note"`
		IsOptional     bool    `json:"is_optional"`
		DisplayOrder   *int    `json:"display_order" validate:"omitempty,min=0"`
	}

	RecipeIngredientResponse struct {
		ID             string  `json:"id"`
		FoodID         string  `json:"food_id"`
		FoodName       string  `json:"food_name"`
		Quantity       float64 `json:"quantity"`
		Unit           string  `json:"unit"`
		IngredientNote string  `json:"ingredient_note,omitempty"`
		IsOptional     bool    `json:"is_optional"`
		DisplayOrder   int     `json:"display_order"`
	}

	CreateRecipeRequest struct {
		Name            string `json:"name" validate:"required"`
		Description     string `json:"description"`
		CuisineType     string `json:"cuisine_type"`
		MealType        string `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack dessert"`
		PrepTimeMinutes int    `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int    `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        int    `json:"servings" validate:"omitempty,min=1"`
		Instructions    string `json:"instructions"`
		SourceURL       string `json:"source_url"`
		ImageURL        string `json:"image_url"`
		DifficultyLevel string `json:"difficulty_level" validate:"omitempty,oneof=easy medium hard"`
		SpicinessLevel  int    `json:"spiciness_level" validate:"omitempty,min=0,max=5"`

		IsVegan       bool `json:"is_vegan"`
		IsVegetarian  bool `json:"is_vegetarian"`
		IsGlutenFree  bool `json:"is_gluten_free"`
		IsDairyFree   bool `json:"is_dairy_free"`
		IsHalal       bool `json:"is_halal"`
		IsKosher      bool `json:"is_kosher"`
		IsLowCarb     bool `json:"is_low_carb"`
		IsHighProtein bool `json:"is_high_protein"`

		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	// UpdateRecipeRequest is a patch: nil fields are left untouched. A non-nil
	// Ingredients slice replaces the recipe's ingredient list wholesale.
	UpdateRecipeRequest struct {
		Name            *string `json:"name"`
		Description     *string `json:"description"`
		CuisineType     *string `json:"cuisine_type"`
		MealType        *string `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack dessert"`
		PrepTimeMinutes *int    `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes *int    `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        *int    `json:"servings" validate:"omitempty,min=1"`
		Instructions    *string `json:"instructions"`
		SourceURL       *string `json:"source_url"`
		ImageURL        *string `json:"image_url"`
		DifficultyLevel *string `json:"difficulty_level" validate:"omitempty,oneof=easy medium hard"`
		SpicinessLevel  *int    `json:"spiciness_level" validate:"omitempty,min=0,max=5"`

		IsVegan       *bool `json:"is_vegan"`
		IsVegetarian  *bool `json:"is_vegetarian"`
		IsGlutenFree  *bool `json:"is_gluten_free"`
		IsDairyFree   *bool `json:"is_dairy_free"`
		IsHalal       *bool `json:"is_halal"`
		IsKosher      *bool `json:"is_kosher"`
		IsLowCarb     *bool `json:"is_low_carb"`
		IsHighProtein *bool `json:"is_high_protein"`

		Ingredients *[]RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	RecipeResponse struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		Description      string `json:"description,omitempty"`
		CuisineType      string `json:"cuisine_type,omitempty"`
		MealType         string `json:"meal_type,omitempty"`
		PrepTimeMinutes  int    `json:"prep_time_minutes"`
		CookTimeMinutes  int    `json:"cook_time_minutes"`
		TotalTimeMinutes int    `json:"total_time_minutes"`
		Servings         int    `json:"servings"`
		Instructions     string `json:"instructions,omitempty"`
		SourceURL        string `json:"source_url,omitempty"`
		ImageURL         string `json:"image_url,omitempty"`
		DifficultyLevel  string `json:"difficulty_level,omitempty"`
		SpicinessLevel   int    `json:"spiciness_level"`

		TotalCalories      *float64 `json:"total_calories,omitempty"`
		TotalProtein       *float64 `json:"total_protein,omitempty"`
		TotalCarbs         *float64 `json:"total_carbs,omitempty"`
		TotalFat           *float64 `json:"total_fat,omitempty"`
		TotalFiber         *float64 `json:"total_fiber,omitempty"`
		CaloriesPerServing *float64 `json:"calories_per_serving,omitempty"`
		ProteinPerServing  *float64 `json:"protein_per_serving,omitempty"`
		CarbsPerServing    *float64 `json:"carbs_per_serving,omitempty"`
		FatPerServing      *float64 `json:"fat_per_serving,omitempty"`

		IsVegan       bool `json:"is_vegan"`
		IsVegetarian  bool `json:"is_vegetarian"`
		IsGlutenFree  bool `json:"is_gluten_free"`
		IsDairyFree   bool `json:"is_dairy_free"`
		IsHalal       bool `json:"is_halal"`
		IsKosher      bool `json:"is_kosher"`
		IsLowCarb     bool `json:"is_low_carb"`
		IsHighProtein bool `json:"is_high_protein"`

		DataSource  string                     `json:"data_source"`
		Ingredients []RecipeIngredientResponse `json:"ingredients,omitempty"`
		CreatedAt   time.Time                  `json:"created_at"`
	}

	RecipeListFilter struct {
		CuisineType   string `query:"cuisine_type"`
		MealType      string `query:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack dessert"`
		MaxTotalTime  int    `query:"max_total_time" validate:"omitempty,min=0"`
		IsVegan       *bool  `query:"is_vegan"`
		IsVegetarian  *bool  `query:"is_vegetarian"`
		IsGlutenFree  *bool  `query:"is_gluten_free"`
		IsDairyFree   *bool  `query:"is_dairy_free"`
		IsHalal       *bool  `query:"is_halal"`
		IsKosher      *bool  `query:"is_kosher"`
		IsLowCarb     *bool  `query:"is_low_carb"`
		IsHighProtein *bool  `query:"is_high_protein"`
		Search        string `query:"search"`
		Page          int    `query:"page" validate:"omitempty,min=1"`
		PageSize      int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	}

	RecipeListResponse struct {
		Items      []RecipeResponse `json:"items"`
		TotalCount int64            `json:"total_count"`
		Page       int              `json:"page"`
		PageSize   int              `json:"page_size"`
		TotalPages int              `json:"total_pages"`
	}

	SaveRecipeRequest struct {
		Notes *string `json:"notes" validate:"omitempty,max=500"`
	}

	SavedRecipeResponse struct {
		Recipe  RecipeResponse `json:"recipe"`
		Notes   *string        `json:"notes,omitempty"`
		SavedAt time.Time      `json:"saved_at"`
	}

	SavedRecipeListFilter struct {
		Page     int `query:"page" validate:"omitempty,min=1"`
		PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
	}

	SavedRecipeListResponse struct {
		Items      []SavedRecipeResponse `json:"items"`
		TotalCount int64                 `json:"total_count"`
		Page       int                   `json:"page"`
		PageSize   int                   `json:"page_size"`
		TotalPages int                   `json:"total_pages"`
	}

	RecommendationFilter struct {
		MealType      string   `query:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack dessert"`
		IsVegan       *bool    `query:"is_vegan"`
		IsVegetarian  *bool    `query:"is_vegetarian"`
		IsHalal       *bool    `query:"is_halal"`
		IsGlutenFree  *bool    `query:"is_gluten_free"`
		MinMatchScore *float64 `query:"min_match_score" validate:"omitempty,min=0,max=100"`
		Limit         int      `query:"limit" validate:"omitempty,min=1,max=50"`
	}

	RecipeRecommendation struct {
		Recipe               RecipeResponse `json:"recipe"`
		MatchScore           float64        `json:"match_score"`
		AvailableIngredients int            `json:"available_ingredients"`
		TotalIngredients     int            `json:"total_ingredients"`
		MissingIngredients   []string       `json:"missing_ingredients"`
		RequiredMissing      int            `json:"required_missing"`
		UsesExpiring         bool           `json:"uses_expiring"`
	}

	ExternalRecipeSearchFilter struct {
		Query       string `query:"query" validate:"required"`
		Diet        string `query:"diet"`
		Health      string `query:"health"`
		CuisineType string `query:"cuisine_type"`
		MealType    string `query:"meal_type"`
		Calories    string `query:"calories"`
		Limit       int    `query:"limit" validate:"omitempty,min=1,max=100"`
	}

	ExternalRecipeResult struct {
		RecipeName       string   `json:"recipe_name"`
		ImageURL         string   `json:"image_url,omitempty"`
		SourceURL        string   `json:"source_url,omitempty"`
		Calories         float64  `json:"calories"`
		Servings         int      `json:"servings"`
		IngredientsCount int      `json:"ingredients_count"`
		DietLabels       []string `json:"diet_labels"`
		ImportURI        string   `json:"import_uri"`
	}

	ImportRecipeRequest struct {
		EdamamURI string `json:"edamam_uri" validate:"required"`
	}
)
