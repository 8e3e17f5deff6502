package grocery

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"pantry-pilot/domain"
	"pantry-pilot/entities"
	"pantry-pilot/pkg/food"
	"pantry-pilot/pkg/inventory"
	"pantry-pilot/pkg/recipe"
	"time"
)

type (
	GroceryService interface {
		GetEntries(ctx context.Context, userID string, filter domain.GroceryListFilter) ([]domain.GroceryEntryResponse, error)
		AddEntry(ctx context.Context, userID string, req domain.AddGroceryEntryRequest) (domain.GroceryEntryResponse, error)
		UpdateEntry(ctx context.Context, id string, userID string, req domain.UpdateGroceryEntryRequest) (domain.GroceryEntryResponse, error)
		DeleteEntry(ctx context.Context, id string, userID string) error
		TogglePurchased(ctx context.Context, id string, userID string) (domain.TogglePurchasedResponse, error)
		ClearPurchased(ctx context.Context, userID string) (domain.ClearPurchasedResponse, error)
		GenerateFromRecipe(ctx context.Context, userID string, recipeID string) (domain.GenerateFromRecipeResponse, error)
		Checkout(ctx context.Context, userID string) (domain.CheckoutResponse, error)
	}

	groceryService struct {
		groceryRepository   GroceryRepository
		foodRepository      food.FoodRepository
		recipeRepository    recipe.RecipeRepository
		inventoryRepository inventory.InventoryRepository
		now                 func() time.Time
	}
)

// checkoutExpiryDays is the flat shelf life stamped on checked-out entries.
const checkoutExpiryDays = 7

func NewGroceryService(
	groceryRepository GroceryRepository,
	foodRepository food.FoodRepository,
	recipeRepository recipe.RecipeRepository,
	inventoryRepository inventory.InventoryRepository,
	now func() time.Time,
) GroceryService {
	return &groceryService{
		groceryRepository:   groceryRepository,
		foodRepository:      foodRepository,
		recipeRepository:    recipeRepository,
		inventoryRepository: inventoryRepository,
		now:                 now,
	}
}

func (s *groceryService) GetEntries(ctx context.Context, userID string, filter domain.GroceryListFilter) ([]domain.GroceryEntryResponse, error) {
	entries, err := s.groceryRepository.GetEntries(ctx, userID, filter.ShowPurchased)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.GroceryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, groceryEntryResponse(entry))
	}
	return responses, nil
}

func (s *groceryService) AddEntry(ctx context.Context, userID string, req domain.AddGroceryEntryRequest) (domain.GroceryEntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroceryEntryResponse{}, domain.ErrParseUUID
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryEntryResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.GroceryEntryResponse{}, err
	}

	reason := req.Reason
	if reason == "" {
		reason = "dont_have"
	}
	priority := req.Priority
	if priority == 0 {
		priority = 1
	}

	entry := &entities.GroceryEntry{
		UserID:          userUUID,
		FoodID:          foodItem.ID,
		QuantityNeeded:  decimal.NewFromFloat(req.QuantityNeeded),
		Unit:            req.Unit,
		Reason:          reason,
		Priority:        priority,
		EstimatedPrice:  floatPtrToDecimal(req.EstimatedPrice),
		StorePreference: req.StorePreference,
		AisleLocation:   req.AisleLocation,
	}

	if err := s.groceryRepository.AddEntry(ctx, entry); err != nil {
		return domain.GroceryEntryResponse{}, err
	}

	entry.Food = foodItem
	return groceryEntryResponse(entry), nil
}

func (s *groceryService) UpdateEntry(ctx context.Context, id string, userID string, req domain.UpdateGroceryEntryRequest) (domain.GroceryEntryResponse, error) {
	entry, err := s.groceryRepository.GetEntryByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryEntryResponse{}, domain.ErrGroceryEntryNotFound
		}
		return domain.GroceryEntryResponse{}, err
	}

	if req.QuantityNeeded != nil {
		entry.QuantityNeeded = decimal.NewFromFloat(*req.QuantityNeeded)
	}
	if req.Unit != nil {
		entry.Unit = *req.Unit
	}
	if req.Priority != nil {
		entry.Priority = *req.Priority
	}
	if req.EstimatedPrice != nil {
		entry.EstimatedPrice = floatPtrToDecimal(req.EstimatedPrice)
	}
	if req.StorePreference != nil {
		entry.StorePreference = *req.StorePreference
	}
	if req.AisleLocation != nil {
		entry.AisleLocation = *req.AisleLocation
	}

	if err := s.groceryRepository.UpdateEntry(ctx, entry); err != nil {
		return domain.GroceryEntryResponse{}, err
	}
	return groceryEntryResponse(entry), nil
}

func (s *groceryService) DeleteEntry(ctx context.Context, id string, userID string) error {
	if _, err := s.groceryRepository.GetEntryByID(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryEntryNotFound
		}
		return err
	}
	return s.groceryRepository.DeleteEntry(ctx, id, userID)
}

func (s *groceryService) TogglePurchased(ctx context.Context, id string, userID string) (domain.TogglePurchasedResponse, error) {
	entry, err := s.groceryRepository.GetEntryByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TogglePurchasedResponse{}, domain.ErrGroceryEntryNotFound
		}
		return domain.TogglePurchasedResponse{}, err
	}

	entry.IsPurchased = !entry.IsPurchased
	if err := s.groceryRepository.UpdateEntry(ctx, entry); err != nil {
		return domain.TogglePurchasedResponse{}, err
	}

	return domain.TogglePurchasedResponse{
		ID:          entry.ID.String(),
		IsPurchased: entry.IsPurchased,
	}, nil
}

func (s *groceryService) ClearPurchased(ctx context.Context, userID string) (domain.ClearPurchasedResponse, error) {
	count, err := s.groceryRepository.DeletePurchased(ctx, userID)
	if err != nil {
		return domain.ClearPurchasedResponse{}, err
	}
	return domain.ClearPurchasedResponse{RemovedCount: count}, nil
}

// GenerateFromRecipe adds the recipe's missing ingredient quantities to the
// user's list. Shortfalls against an existing unpurchased entry are merged
// into it; everything else becomes a new entry tagged with the recipe.
func (s *groceryService) GenerateFromRecipe(ctx context.Context, userID string, recipeID string) (domain.GenerateFromRecipeResponse, error) {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GenerateFromRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.GenerateFromRecipeResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GenerateFromRecipeResponse{}, domain.ErrParseUUID
	}

	foodIDs := make([]uuid.UUID, 0, len(rec.Ingredients))
	for _, ingredient := range rec.Ingredients {
		foodIDs = append(foodIDs, ingredient.FoodID)
	}

	entries, err := s.inventoryRepository.GetFreshEntriesByFoodIDs(ctx, userID, foodIDs, s.now())
	if err != nil {
		return domain.GenerateFromRecipeResponse{}, err
	}

	available := make(map[uuid.UUID]decimal.Decimal, len(entries))
	for _, entry := range entries {
		available[entry.FoodID] = available[entry.FoodID].Add(entry.Quantity)
	}

	itemsAdded := []string{}
	mergedCount := 0
	for _, deficit := range computeDeficits(rec.Ingredients, available) {
		merged, err := s.groceryRepository.AddQuantityToUnpurchased(ctx, userID, deficit.foodID, deficit.quantity)
		if err != nil {
			return domain.GenerateFromRecipeResponse{}, err
		}
		if merged {
			mergedCount++
			continue
		}

		entry := &entities.GroceryEntry{
			UserID:         userUUID,
			FoodID:         deficit.foodID,
			QuantityNeeded: deficit.quantity,
			Unit:           deficit.unit,
			Reason:         "recipe_requirement",
			RecipeID:       &rec.ID,
			Priority:       1,
		}
		if err := s.groceryRepository.AddEntry(ctx, entry); err != nil {
			return domain.GenerateFromRecipeResponse{}, err
		}
		itemsAdded = append(itemsAdded, deficit.foodName)
	}

	return domain.GenerateFromRecipeResponse{
		Message:     "Grocery list updated",
		ItemsAdded:  itemsAdded,
		MergedCount: mergedCount,
		RecipeName:  rec.Name,
	}, nil
}

func (s *groceryService) Checkout(ctx context.Context, userID string) (domain.CheckoutResponse, error) {
	entries, err := s.groceryRepository.GetPurchasedEntries(ctx, userID)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	if len(entries) == 0 {
		return domain.CheckoutResponse{}, domain.ErrNoPurchasedEntries
	}

	today := truncateToDate(s.now())
	notes := fmt.Sprintf("Bought from grocery list on %s", today.Format("2006-01-02"))

	inventoryEntries := make([]*entities.InventoryEntry, 0, len(entries))
	for _, entry := range entries {
		inventoryEntries = append(inventoryEntries, &entities.InventoryEntry{
			UserID:          entry.UserID,
			FoodID:          entry.FoodID,
			Quantity:        entry.QuantityNeeded,
			Unit:            entry.Unit,
			PurchaseDate:    today,
			ExpiryDate:      today.AddDate(0, 0, checkoutExpiryDays),
			StorageLocation: "fridge",
			Notes:           notes,
		})
	}

	if err := s.groceryRepository.MoveEntriesToInventory(ctx, entries, inventoryEntries); err != nil {
		return domain.CheckoutResponse{}, err
	}

	return domain.CheckoutResponse{
		Message:    fmt.Sprintf("Successfully moved %d items to your fridge!", len(entries)),
		MovedCount: len(entries),
	}, nil
}

type ingredientDeficit struct {
	foodID   uuid.UUID
	foodName string
	quantity decimal.Decimal
	unit     string
}

// computeDeficits returns the per-ingredient shortfall against what the user
// has on hand. Optional ingredients are shopped for as well.
func computeDeficits(ingredients []*entities.RecipeIngredient, available map[uuid.UUID]decimal.Decimal) []ingredientDeficit {
	deficits := make([]ingredientDeficit, 0, len(ingredients))
	for _, ingredient := range ingredients {
		deficit := ingredient.Quantity.Sub(available[ingredient.FoodID])
		if !deficit.GreaterThan(decimal.Zero) {
			continue
		}

		name := ingredient.FoodID.String()
		if ingredient.Food != nil {
			name = ingredient.Food.Name
		}

		deficits = append(deficits, ingredientDeficit{
			foodID:   ingredient.FoodID,
			foodName: name,
			quantity: deficit,
			unit:     ingredient.Unit,
		})
	}
	return deficits
}

func groceryEntryResponse(entry *entities.GroceryEntry) domain.GroceryEntryResponse {
	response := domain.GroceryEntryResponse{
		ID:              entry.ID.String(),
		FoodID:          entry.FoodID.String(),
		FoodName:        "Unknown",
		QuantityNeeded:  entry.QuantityNeeded.InexactFloat64(),
		Unit:            entry.Unit,
		Reason:          entry.Reason,
		IsPurchased:     entry.IsPurchased,
		Priority:        entry.Priority,
		EstimatedPrice:  decimalPtrToFloat(entry.EstimatedPrice),
		StorePreference: entry.StorePreference,
		AisleLocation:   entry.AisleLocation,
	}

	if entry.Food != nil {
		response.FoodName = entry.Food.Name
		response.FoodCategory = entry.Food.Category
	}

	if entry.RecipeID != nil {
		recipeID := entry.RecipeID.String()
		response.RecipeID = &recipeID
	}
	if entry.Recipe != nil {
		response.RecipeName = &entry.Recipe.Name
	}

	return response
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func floatPtrToDecimal(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

func decimalPtrToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}
