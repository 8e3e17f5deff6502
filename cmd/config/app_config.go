package config

import (
	"os"
	"pantry-pilot/internal/api/handlers"
	"pantry-pilot/internal/api/routes"
	"pantry-pilot/internal/middleware"
	"pantry-pilot/internal/utils"
	"pantry-pilot/internal/utils/storage"
	"pantry-pilot/pkg/food"
	"pantry-pilot/pkg/grocery"
	"pantry-pilot/pkg/inventory"
	"pantry-pilot/pkg/providers"
	"pantry-pilot/pkg/recipe"
	"pantry-pilot/pkg/user"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validate := validator.New()

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	openFoodFacts := providers.NewOpenFoodFactsClient(utils.GetConfig("OPENFOODFACTS_BASE_URL"))
	usda := providers.NewUSDAClient(utils.GetConfig("USDA_BASE_URL"), utils.GetConfig("USDA_API_KEY"))
	edamam := providers.NewEdamamClient(
		utils.GetConfig("EDAMAM_BASE_URL"),
		utils.GetConfig("EDAMAM_APP_ID"),
		utils.GetConfig("EDAMAM_APP_KEY"),
	)

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)

	// Service
	userService := user.NewUserService(userRepository)
	foodService := food.NewFoodService(foodRepository, s3, openFoodFacts, usda)
	inventoryService := inventory.NewInventoryService(inventoryRepository, foodRepository, time.Now)
	recipeService := recipe.NewRecipeService(
		recipeRepository,
		foodRepository,
		userRepository,
		inventoryRepository,
		edamam,
		time.Now,
	)
	groceryService := grocery.NewGroceryService(
		groceryRepository,
		foodRepository,
		recipeRepository,
		inventoryRepository,
		time.Now,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validate)
	foodHandler := handlers.NewFoodHandler(foodService, validate)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validate)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validate)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validate)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FoodHandler:      foodHandler,
		InventoryHandler: inventoryHandler,
		RecipeHandler:    recipeHandler,
		GroceryHandler:   groceryHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
