package domain

import "errors"

var (
	MessageSuccessAddInventoryEntry    = "inventory entry added successfully"
	MessageSuccessGetInventoryEntries  = "inventory entries retrieved successfully"
	MessageSuccessGetInventoryEntry    = "inventory entry retrieved successfully"
	MessageSuccessUpdateInventoryEntry = "inventory entry updated successfully"
	MessageSuccessDeleteInventoryEntry = "inventory entry deleted successfully"
	MessageSuccessGetExpiringEntries   = "expiring entries retrieved successfully"
	MessageSuccessGetInventoryStats    = "inventory stats retrieved successfully"

	MessageFailedAddInventoryEntry    = "failed to add inventory entry"
	MessageFailedGetInventoryEntries  = "failed to retrieve inventory entries"
	MessageFailedGetInventoryEntry    = "failed to retrieve inventory entry"
	MessageFailedUpdateInventoryEntry = "failed to update inventory entry"
	MessageFailedDeleteInventoryEntry = "failed to delete inventory entry"
	MessageFailedGetExpiringEntries   = "failed to retrieve expiring entries"
	MessageFailedGetInventoryStats    = "failed to retrieve inventory stats"

	ErrInventoryEntryNotFound = errors.New("inventory entry not found")
	ErrInvalidDateFormat      = errors.New("invalid date format, expected YYYY-MM-DD")
)

type (
	AddInventoryEntryRequest struct {
		FoodID          string   `json:"food_id" validate:"required,uuid"`
		Quantity        float64  `json:"quantity" validate:"required,gt=0"`
		Unit            string   `json:"unit" validate:"required"`
		PurchaseDate    string   `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
		ExpiryDate      string   `json:"expiry_date" validate:"required,datetime=2006-01-02"`
		StorageLocation string   `json:"storage_location" validate:"required,oneof=fridge freezer pantry counter"`
		PricePaid       *float64 `json:"price_paid" validate:"omitempty,min=0"`
		Currency        string   `json:"currency" validate:"omitempty,len=3"`
		Notes           string   `json:"notes"`
	}

	// UpdateInventoryEntryRequest is a patch: nil fields are left untouched.
	UpdateInventoryEntryRequest struct {
		Quantity        *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit            *string  `json:"unit"`
		ExpiryDate      *string  `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
		StorageLocation *string  `json:"storage_location" validate:"omitempty,oneof=fridge freezer pantry counter"`
		PricePaid       *float64 `json:"price_paid" validate:"omitempty,min=0"`
		Notes           *string  `json:"notes"`
	}

	InventoryEntryResponse struct {
		ID              string   `json:"id"`
		FoodID          string   `json:"food_id"`
		FoodName        string   `json:"food_name"`
		FoodCategory    string   `json:"food_category,omitempty"`
		FoodImageURL    string   `json:"food_image_url,omitempty"`
		Quantity        float64  `json:"quantity"`
		Unit            string   `json:"unit"`
		PurchaseDate    string   `json:"purchase_date,omitempty"`
		ExpiryDate      string   `json:"expiry_date"`
		StorageLocation string   `json:"storage_location"`
		PricePaid       *float64 `json:"price_paid,omitempty"`
		Currency        string   `json:"currency,omitempty"`
		Notes           string   `json:"notes,omitempty"`
		FreshnessStatus string   `json:"freshness_status"`
		DaysUntilExpiry int      `json:"days_until_expiry"`
	}

	InventoryListFilter struct {
		StorageLocation string `query:"storage_location" validate:"omitempty,oneof=fridge freezer pantry counter"`
		Category        string `query:"category"`
		FreshnessStatus string `query:"freshness_status" validate:"omitempty,oneof=fresh consume_soon expiring_soon expired"`
		Page            int    `query:"page" validate:"omitempty,min=1"`
		PageSize        int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	}

	InventoryListResponse struct {
		Items      []InventoryEntryResponse `json:"items"`
		TotalCount int64                    `json:"total_count"`
		Page       int                      `json:"page"`
		PageSize   int                      `json:"page_size"`
		TotalPages int                      `json:"total_pages"`
	}

	InventoryStatsResponse struct {
		TotalItems        int            `json:"total_items"`
		TotalValue        float64        `json:"total_value"`
		FreshCount        int            `json:"fresh_count"`
		ConsumeSoonCount  int            `json:"consume_soon_count"`
		ExpiringSoonCount int            `json:"expiring_soon_count"`
		ExpiredCount      int            `json:"expired_count"`
		Categories        map[string]int `json:"categories"`
		StorageBreakdown  map[string]int `json:"storage_breakdown"`
	}
)
