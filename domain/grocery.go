package domain

import "errors"

var (
	MessageSuccessGetGroceryEntries  = "grocery list retrieved successfully"
	MessageSuccessAddGroceryEntry    = "grocery entry added successfully"
	MessageSuccessUpdateGroceryEntry = "grocery entry updated successfully"
	MessageSuccessDeleteGroceryEntry = "grocery entry deleted successfully"
	MessageSuccessTogglePurchased    = "grocery entry toggled successfully"
	MessageSuccessClearPurchased     = "purchased entries cleared successfully"
	MessageSuccessGenerateFromRecipe = "grocery list generated successfully"
	MessageSuccessCheckout           = "checkout completed successfully"

	MessageFailedGetGroceryEntries  = "failed to retrieve grocery list"
	MessageFailedAddGroceryEntry    = "failed to add grocery entry"
	MessageFailedUpdateGroceryEntry = "failed to update grocery entry"
	MessageFailedDeleteGroceryEntry = "failed to delete grocery entry"
	MessageFailedTogglePurchased    = "failed to toggle grocery entry"
	MessageFailedClearPurchased     = "failed to clear purchased entries"
	MessageFailedGenerateFromRecipe = "failed to generate grocery list"
	MessageFailedCheckout           = "failed to checkout grocery list"

	ErrGroceryEntryNotFound = errors.New("grocery entry not found")
	ErrNoPurchasedEntries   = errors.New("no purchased items to checkout")
)

type (
	AddGroceryEntryRequest struct {
		FoodID          string   `json:"food_id" validate:"required,uuid"`
		QuantityNeeded  float64  `json:"quantity_needed" validate:"required,gt=0"`
		Unit            string   `json:"unit" validate:"required"`
		Reason          string   `json:"reason" validate:"omitempty,oneof=dont_have expiring_soon need_more recipe_requirement"`
		Priority        int      `json:"priority" validate:"omitempty,min=1,max=5"`
		EstimatedPrice  *float64 `json:"estimated_price" validate:"omitempty,min=0"`
		StorePreference string   `json:"store_preference"`
		AisleLocation   string   `json:"aisle_location"`
	}

	// UpdateGroceryEntryRequest is a patch: nil fields are left untouched.
	UpdateGroceryEntryRequest struct {
		QuantityNeeded  *float64 `json:"quantity_needed" validate:"omitempty,gt=0"`
		Unit            *string  `json:"unit"`
		Priority        *int     `json:"priority" validate:"omitempty,min=1,max=5"`
		EstimatedPrice  *float64 `json:"estimated_price" validate:"omitempty,min=0"`
		StorePreference *string  `json:"store_preference"`
		AisleLocation   *string  `json:"aisle_location"`
	}

	GroceryEntryResponse struct {
		ID              string   `json:"id"`
		FoodID          string   `json:"food_id"`
		FoodName        string   `json:"food_name"`
		FoodCategory    string   `json:"food_category,omitempty"`
		QuantityNeeded  float64  `json:"quantity_needed"`
		Unit            string   `json:"unit"`
		Reason          string   `json:"reason"`
		RecipeID        *string  `json:"recipe_id,omitempty"`
		RecipeName      *string  `json:"recipe_name,omitempty"`
		IsPurchased     bool     `json:"is_purchased"`
		Priority        int      `json:"priority"`
		EstimatedPrice  *float64 `json:"estimated_price,omitempty"`
		StorePreference string   `json:"store_preference,omitempty"`
		AisleLocation   string   `json:"aisle_location,omitempty"`
	}

	GroceryListFilter struct {
		ShowPurchased bool `query:"show_purchased"`
	}

	TogglePurchasedResponse struct {
		ID          string `json:"id"`
		IsPurchased bool   `json:"is_purchased"`
	}

	ClearPurchasedResponse struct {
		RemovedCount int64 `json:"removed_count"`
	}

	GenerateFromRecipeResponse struct {
		Message     string   `json:"message"`
		ItemsAdded  []string `json:"items_added"`
		MergedCount int      `json:"merged_count"`
		RecipeName  string   `json:"recipe_name"`
	}

	CheckoutResponse struct {
		Message    string `json:"message"`
		MovedCount int    `json:"moved_count"`
	}
)
