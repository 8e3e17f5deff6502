package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessScanBarcode     = "barcode scanned successfully"
	MessageSuccessSearchFoodItems = "food items retrieved successfully"
	MessageSuccessCreateFoodItem  = "food item created successfully"
	MessageSuccessGetFoodItem     = "food item retrieved successfully"
	MessageSuccessUploadFoodImage = "food image uploaded successfully"

	MessageFailedScanBarcode     = "failed to scan barcode"
	MessageFailedSearchFoodItems = "failed to search food items"
	MessageFailedCreateFoodItem  = "failed to create food item"
	MessageFailedGetFoodItem     = "failed to retrieve food item"
	MessageFailedUploadFoodImage = "failed to upload food image"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrMissingSearchQuery = errors.New("search query is required")
)

type (
	ScanBarcodeRequest struct {
		Barcode string `json:"barcode" validate:"required"`
	}

	ScanBarcodeResponse struct {
		Found    bool              `json:"found"`
		FoodItem *FoodItemResponse `json:"food_item,omitempty"`
		Message  string            `json:"message"`
	}

	CreateFoodItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Brand    string `json:"brand"`
		Category string `json:"category"`

		CaloriesPer100g *float64 `json:"calories_per_100g" validate:"omitempty,min=0"`
		ProteinPer100g  *float64 `json:"protein_per_100g" validate:"omitempty,min=0"`
		CarbsPer100g    *float64 `json:"carbs_per_100g" validate:"omitempty,min=0"`
		FatPer100g      *float64 `json:"fat_per_100g" validate:"omitempty,min=0"`
		FiberPer100g    *float64 `json:"fiber_per_100g" validate:"omitempty,min=0"`
		SugarPer100g    *float64 `json:"sugar_per_100g" validate:"omitempty,min=0"`
		SodiumPer100g   *float64 `json:"sodium_per_100g" validate:"omitempty,min=0"`
		ServingSizeG    *float64 `json:"serving_size_g" validate:"omitempty,gt=0"`

		IsVegan      bool `json:"is_vegan"`
		IsVegetarian bool `json:"is_vegetarian"`
		IsGlutenFree bool `json:"is_gluten_free"`
		IsDairyFree  bool `json:"is_dairy_free"`
		IsHalal      bool `json:"is_halal"`
		IsKosher     bool `json:"is_kosher"`

		ImageURL string `json:"image_url"`
	}

	FoodItemResponse struct {
		ID       string  `json:"id"`
		Barcode  *string `json:"barcode,omitempty"`
		Name     string  `json:"name"`
		Brand    string  `json:"brand,omitempty"`
		Category string  `json:"category,omitempty"`

		CaloriesPer100g *float64 `json:"calories_per_100g,omitempty"`
		ProteinPer100g  *float64 `json:"protein_per_100g,omitempty"`
		CarbsPer100g    *float64 `json:"carbs_per_100g,omitempty"`
		FatPer100g      *float64 `json:"fat_per_100g,omitempty"`
		FiberPer100g    *float64 `json:"fiber_per_100g,omitempty"`
		SugarPer100g    *float64 `json:"sugar_per_100g,omitempty"`
		SodiumPer100g   *float64 `json:"sodium_per_100g,omitempty"`
		ServingSizeG    *float64 `json:"serving_size_g,omitempty"`

		IsVegan      bool `json:"is_vegan"`
		IsVegetarian bool `json:"is_vegetarian"`
		IsGlutenFree bool `json:"is_gluten_free"`
		IsDairyFree  bool `json:"is_dairy_free"`
		IsHalal      bool `json:"is_halal"`
		IsKosher     bool `json:"is_kosher"`

		ImageURL   string    `json:"image_url,omitempty"`
		DataSource string    `json:"data_source"`
		CreatedAt  time.Time `json:"created_at"`
	}

	UploadFoodImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadFoodImageResponse struct {
		FoodItemID string `json:"food_item_id"`
		ImageURL   string `json:"image_url"`
	}
)
