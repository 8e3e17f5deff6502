package food

import (
	"context"
	"errors"
	"fmt"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"log"
	"pantry-pilot/domain"
	"pantry-pilot/entities"
	"pantry-pilot/internal/utils/storage"
	"pantry-pilot/pkg/providers"
)

type (
	FoodService interface {
		ScanBarcode(ctx context.Context, req domain.ScanBarcodeRequest) (domain.ScanBarcodeResponse, error)
		SearchFoodItems(ctx context.Context, query string, limit int) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		CreateFoodItem(ctx context.Context, req domain.CreateFoodItemRequest) (domain.FoodItemResponse, error)
		UploadFoodImage(ctx context.Context, foodItemID string, req domain.UploadFoodImageRequest) (domain.UploadFoodImageResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
		openFoodFacts  providers.OpenFoodFactsClient
		usda           providers.USDAClient
	}
)

// usdaFallbackThreshold is the local hit count below which a name search
// also consults the USDA database.
const usdaFallbackThreshold = 5

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3, openFoodFacts providers.OpenFoodFactsClient, usda providers.USDAClient) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
		openFoodFacts:  openFoodFacts,
		usda:           usda,
	}
}

func (s *foodService) ScanBarcode(ctx context.Context, req domain.ScanBarcodeRequest) (domain.ScanBarcodeResponse, error) {
	local, err := s.foodRepository.GetFoodItemByBarcode(ctx, req.Barcode)
	if err == nil {
		response := foodItemResponse(local)
		return domain.ScanBarcodeResponse{
			Found:    true,
			FoodItem: &response,
			Message:  "Found in local database",
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ScanBarcodeResponse{}, err
	}

	product, err := s.openFoodFacts.FetchProduct(ctx, req.Barcode)
	if err != nil {
		if errors.Is(err, providers.ErrProductNotFound) {
			return domain.ScanBarcodeResponse{
				Found:   false,
				Message: "Product not found in global database",
			}, nil
		}
		return domain.ScanBarcodeResponse{}, err
	}

	foodItem := foodItemFromProduct(req.Barcode, product)
	if err := s.foodRepository.CreateFoodItem(ctx, foodItem); err != nil {
		return domain.ScanBarcodeResponse{}, err
	}

	response := foodItemResponse(foodItem)
	return domain.ScanBarcodeResponse{
		Found:    true,
		FoodItem: &response,
		Message:  "Fetched from Open Food Facts",
	}, nil
}

func (s *foodService) SearchFoodItems(ctx context.Context, query string, limit int) ([]domain.FoodItemResponse, error) {
	if limit <= 0 {
		limit = 20
	}

	local, err := s.foodRepository.SearchFoodItemsByName(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]domain.FoodItemResponse, 0, len(local))
	for _, item := range local {
		results = append(results, foodItemResponse(item))
	}

	if len(local) < usdaFallbackThreshold {
		results = append(results, s.searchUSDA(ctx, query)...)
	}

	return results, nil
}

// searchUSDA pulls matching foods from the USDA database into the local
// catalog. Upstream failures are swallowed so external downtime never
// breaks local search.
func (s *foodService) searchUSDA(ctx context.Context, query string) []domain.FoodItemResponse {
	usdaFoods, err := s.usda.SearchFoods(ctx, query, 25)
	if err != nil {
		log.Printf("usda search for %q failed: %v", query, err)
		return nil
	}

	var results []domain.FoodItemResponse
	for _, usdaFood := range usdaFoods {
		if _, err := s.foodRepository.GetFoodItemByUsdaFdcID(ctx, usdaFood.FdcID); err == nil {
			continue
		}

		fdcID := usdaFood.FdcID
		foodItem := &entities.FoodItem{
			UsdaFdcID:       &fdcID,
			Name:            usdaFood.Description,
			Category:        usdaFood.FoodCategory,
			CaloriesPer100g: floatPtrToDecimal(usdaFood.Nutrient("Energy")),
			ProteinPer100g:  floatPtrToDecimal(usdaFood.Nutrient("Protein")),
			CarbsPer100g:    floatPtrToDecimal(usdaFood.Nutrient("Carbohydrate, by difference")),
			FatPer100g:      floatPtrToDecimal(usdaFood.Nutrient("Total lipid (fat)")),
			FiberPer100g:    floatPtrToDecimal(usdaFood.Nutrient("Fiber, total dietary")),
			SugarPer100g:    floatPtrToDecimal(usdaFood.Nutrient("Total Sugars")),
			SodiumPer100g:   floatPtrToDecimal(usdaFood.Nutrient("Sodium, Na")),
			ImageURL:        guessFoodImage(usdaFood.Description),
			DataSource:      "usda",
		}
		if err := s.foodRepository.CreateFoodItem(ctx, foodItem); err != nil {
			log.Printf("caching usda food %d failed: %v", fdcID, err)
			continue
		}
		results = append(results, foodItemResponse(foodItem))
	}
	return results
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}
	return foodItemResponse(foodItem), nil
}

func (s *foodService) CreateFoodItem(ctx context.Context, req domain.CreateFoodItemRequest) (domain.FoodItemResponse, error) {
	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = guessFoodImage(req.Name)
	}

	foodItem := &entities.FoodItem{
		Name:            req.Name,
		Brand:           req.Brand,
		Category:        req.Category,
		CaloriesPer100g: floatPtrToDecimal(req.CaloriesPer100g),
		ProteinPer100g:  floatPtrToDecimal(req.ProteinPer100g),
		CarbsPer100g:    floatPtrToDecimal(req.CarbsPer100g),
		FatPer100g:      floatPtrToDecimal(req.FatPer100g),
		FiberPer100g:    floatPtrToDecimal(req.FiberPer100g),
		SugarPer100g:    floatPtrToDecimal(req.SugarPer100g),
		SodiumPer100g:   floatPtrToDecimal(req.SodiumPer100g),
		ServingSizeG:    floatPtrToDecimal(req.ServingSizeG),
		IsVegan:         req.IsVegan,
		IsVegetarian:    req.IsVegetarian,
		IsGlutenFree:    req.IsGlutenFree,
		IsDairyFree:     req.IsDairyFree,
		IsHalal:         req.IsHalal,
		IsKosher:        req.IsKosher,
		ImageURL:        imageURL,
		DataSource:      "user_custom",
	}

	if err := s.foodRepository.CreateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}
	return foodItemResponse(foodItem), nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, foodItemID string, req domain.UploadFoodImageRequest) (domain.UploadFoodImageResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, foodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadFoodImageResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.UploadFoodImageResponse{}, err
	}

	fileName := fmt.Sprintf("food-item-%s", foodItem.ID.String())
	var objectKey string
	var uploadErr error

	if foodItem.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return domain.UploadFoodImageResponse{}, uploadErr
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.UploadFoodImageResponse{}, err
	}

	return domain.UploadFoodImageResponse{
		FoodItemID: foodItem.ID.String(),
		ImageURL:   foodItem.ImageURL,
	}, nil
}

func foodItemFromProduct(barcode string, product *providers.Product) *entities.FoodItem {
	name := product.ProductName
	if name == "" {
		name = "Unknown Product"
	}

	category := "Unknown"
	if len(product.CategoriesTags) > 0 {
		category = product.CategoriesTags[0]
	}

	return &entities.FoodItem{
		Barcode:         &barcode,
		Name:            name,
		Brand:           product.Brands,
		Category:        category,
		CaloriesPer100g: floatPtrToDecimal(product.Nutriments.EnergyKcal100g),
		ProteinPer100g:  floatPtrToDecimal(product.Nutriments.Proteins100g),
		CarbsPer100g:    floatPtrToDecimal(product.Nutriments.Carbs100g),
		FatPer100g:      floatPtrToDecimal(product.Nutriments.Fat100g),
		FiberPer100g:    floatPtrToDecimal(product.Nutriments.Fiber100g),
		SugarPer100g:    floatPtrToDecimal(product.Nutriments.Sugars100g),
		SodiumPer100g:   floatPtrToDecimal(product.Nutriments.Sodium100g),
		IsVegan:         product.HasLabel("en:vegan"),
		IsVegetarian:    product.HasLabel("en:vegetarian"),
		IsGlutenFree:    product.HasLabel("en:gluten-free"),
		ImageURL:        product.ImageURL,
		DataSource:      "openfoodfacts",
	}
}

func foodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:              item.ID.String(),
		Barcode:         item.Barcode,
		Name:            item.Name,
		Brand:           item.Brand,
		Category:        item.Category,
		CaloriesPer100g: decimalPtrToFloat(item.CaloriesPer100g),
		ProteinPer100g:  decimalPtrToFloat(item.ProteinPer100g),
		CarbsPer100g:    decimalPtrToFloat(item.CarbsPer100g),
		FatPer100g:      decimalPtrToFloat(item.FatPer100g),
		FiberPer100g:    decimalPtrToFloat(item.FiberPer100g),
		SugarPer100g:    decimalPtrToFloat(item.SugarPer100g),
		SodiumPer100g:   decimalPtrToFloat(item.SodiumPer100g),
		ServingSizeG:    decimalPtrToFloat(item.ServingSizeG),
		IsVegan:         item.IsVegan,
		IsVegetarian:    item.IsVegetarian,
		IsGlutenFree:    item.IsGlutenFree,
		IsDairyFree:     item.IsDairyFree,
		IsHalal:         item.IsHalal,
		IsKosher:        item.IsKosher,
		ImageURL:        item.ImageURL,
		DataSource:      item.DataSource,
		CreatedAt:       item.CreatedAt,
	}
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
