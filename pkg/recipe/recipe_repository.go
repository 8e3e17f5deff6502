package recipe

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"pantry-pilot/entities"
	"time"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeByEdamamURI(ctx context.Context, uri string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter ListFilter, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipesForRecommendation(ctx context.Context, criteria RecommendationCriteria) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []*entities.RecipeIngredient) error
		DeleteRecipe(ctx context.Context, id string) error
		SaveRecipe(ctx context.Context, userID string, recipeID string, notes *string) error
		UnsaveRecipe(ctx context.Context, userID string, recipeID string) error
		GetSavedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.SavedRecipe, int64, error)
		GetPopularRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetTrendingRecipes(ctx context.Context, since time.Time, limit int) ([]*entities.Recipe, error)
	}

	// ListFilter narrows GetRecipes. Nil booleans and zero values mean
	// no filtering on that dimension.
	ListFilter struct {
		CuisineType   string
		MealType      string
		MaxTotalTime  int
		IsVegan       *bool
		IsVegetarian  *bool
		IsGlutenFree  *bool
		IsDairyFree   *bool
		IsHalal       *bool
		IsKosher      *bool
		IsLowCarb     *bool
		IsHighProtein *bool
		Search        string
	}

	// RecommendationCriteria holds the hard dietary constraints for the
	// recommendation query. Every true flag excludes recipes without it.
	RecommendationCriteria struct {
		MealType     string
		IsVegan      bool
		IsVegetarian bool
		IsGlutenFree bool
		IsDairyFree  bool
		IsHalal      bool
		IsKosher     bool
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.display_order asc")
		}).
		Preload("Ingredients.Food").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeByEdamamURI(ctx context.Context, uri string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("edamam_recipe_uri = ?", uri).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter ListFilter, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})

	if filter.CuisineType != "" {
		query = query.Where("cuisine_type = ?", filter.CuisineType)
	}
	if filter.MealType != "" {
		query = query.Where("meal_type = ?", filter.MealType)
	}
	if filter.MaxTotalTime > 0 {
		query = query.Where("total_time_minutes <= ?", filter.MaxTotalTime)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	if filter.IsVegan != nil {
		query = query.Where("is_vegan = ?", *filter.IsVegan)
	}
	if filter.IsVegetarian != nil {
		query = query.Where("is_vegetarian = ?", *filter.IsVegetarian)
	}
	if filter.IsGlutenFree != nil {
		query = query.Where("is_gluten_free = ?", *filter.IsGlutenFree)
	}
	if filter.IsDairyFree != nil {
		query = query.Where("is_dairy_free = ?", *filter.IsDairyFree)
	}
	if filter.IsHalal != nil {
		query = query.Where("is_halal = ?", *filter.IsHalal)
	}
	if filter.IsKosher != nil {
		query = query.Where("is_kosher = ?", *filter.IsKosher)
	}
	if filter.IsLowCarb != nil {
		query = query.Where("is_low_carb = ?", *filter.IsLowCarb)
	}
	if filter.IsHighProtein != nil {
		query = query.Where("is_high_protein = ?", *filter.IsHighProtein)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.display_order asc")
		}).
		Preload("Ingredients.Food").
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesForRecommendation(ctx context.Context, criteria RecommendationCriteria) ([]*entities.Recipe, error) {
	query := r.db.WithContext(ctx).Model(&entities.Recipe{})

	if criteria.MealType != "" {
		query = query.Where("meal_type = ?", criteria.MealType)
	}
	if criteria.IsVegan {
		query = query.Where("is_vegan = ?", true)
	}
	if criteria.IsVegetarian {
		query = query.Where("is_vegetarian = ?", true)
	}
	if criteria.IsGlutenFree {
		query = query.Where("is_gluten_free = ?", true)
	}
	if criteria.IsDairyFree {
		query = query.Where("is_dairy_free = ?", true)
	}
	if criteria.IsHalal {
		query = query.Where("is_halal = ?", true)
	}
	if criteria.IsKosher {
		query = query.Where("is_kosher = ?", true)
	}

	var recipes []*entities.Recipe
	if err := query.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.display_order asc")
		}).
		Preload("Ingredients.Food").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit("Ingredients").Save(recipe).Error
}

func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []*entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(ingredients) == 0 {
			return nil
		}
		return tx.Create(&ingredients).Error
	})
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

// SaveRecipe is idempotent: saving an already-saved recipe only refreshes
// the notes when new ones are provided.
func (r *recipeRepository) SaveRecipe(ctx context.Context, userID string, recipeID string, notes *string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}

	var existing entities.SavedRecipe
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userUUID, recipeUUID).
		First(&existing).Error
	if err == nil {
		if notes != nil {
			existing.Notes = notes
			return r.db.WithContext(ctx).Save(&existing).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	saved := entities.SavedRecipe{
		UserID:   userUUID,
		RecipeID: recipeUUID,
		Notes:    notes,
	}
	return r.db.WithContext(ctx).Create(&saved).Error
}

func (r *recipeRepository) UnsaveRecipe(ctx context.Context, userID string, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.SavedRecipe{}).Error
}

func (r *recipeRepository) GetSavedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.SavedRecipe, int64, error) {
	var saved []*entities.SavedRecipe
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.SavedRecipe{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Recipe.Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.display_order asc")
		}).
		Preload("Recipe.Ingredients.Food").
		Where("user_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("saved_at desc").
		Find(&saved).Error; err != nil {
		return nil, 0, err
	}

	return saved, count, nil
}

func (r *recipeRepository) GetPopularRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN saved_recipes ON saved_recipes.recipe_id = recipes.id").
		Group("recipes.id").
		Order("count(saved_recipes.id) desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetTrendingRecipes(ctx context.Context, since time.Time, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN saved_recipes ON saved_recipes.recipe_id = recipes.id").
		Where("saved_recipes.saved_at > ?", since).
		Group("recipes.id").
		Order("count(saved_recipes.id) desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
