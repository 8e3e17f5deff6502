package routes

import (
	"github.com/gofiber/fiber/v2"
	"pantry-pilot/internal/api/handlers"
	"pantry-pilot/internal/middleware"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FoodHandler      handlers.FoodHandler
	InventoryHandler handlers.InventoryHandler
	RecipeHandler    handlers.RecipeHandler
	GroceryHandler   handlers.GroceryHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Inventory()
	c.Recipes()
	c.Grocery()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users", c.Middleware.UserContextMiddleware())
	// user routes
	{
		user.Get("/profile", c.UserHandler.GetProfile)
		user.Patch("/profile", c.UserHandler.UpdateProfile)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items")

	// Lookup operations
	foodItems.Post("/scan", c.FoodHandler.ScanBarcode)
	foodItems.Get("/search", c.FoodHandler.SearchFoodItems)

	// Basic CRUD operations
	foodItems.Post("", c.FoodHandler.CreateFoodItem)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemByID)
	foodItems.Post("/:id/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.UserContextMiddleware())

	// Fixed paths go before /:id so Fiber does not swallow them.
	inventory.Get("/expiring", c.InventoryHandler.GetExpiringEntries)
	inventory.Get("/stats", c.InventoryHandler.GetStats)

	// Basic CRUD operations
	inventory.Post("", c.InventoryHandler.AddEntry)
	inventory.Get("", c.InventoryHandler.GetEntries)
	inventory.Get("/:id", c.InventoryHandler.GetEntryByID)
	inventory.Patch("/:id", c.InventoryHandler.UpdateEntry)
	inventory.Delete("/:id", c.InventoryHandler.DeleteEntry)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	// Fixed paths go before /:id so Fiber does not swallow them.
	recipes.Get("/recommend", c.Middleware.UserContextMiddleware(), c.RecipeHandler.Recommend)
	recipes.Get("/search/external", c.RecipeHandler.SearchExternalRecipes)
	recipes.Post("/import/edamam", c.RecipeHandler.ImportRecipe)
	recipes.Get("/saved", c.Middleware.UserContextMiddleware(), c.RecipeHandler.GetSavedRecipes)
	recipes.Get("/stats/popular", c.RecipeHandler.GetPopularRecipes)
	recipes.Get("/stats/trending", c.RecipeHandler.GetTrendingRecipes)

	// Basic CRUD operations
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
	recipes.Patch("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

	// Saved recipes
	recipes.Post("/:id/save", c.Middleware.UserContextMiddleware(), c.RecipeHandler.SaveRecipe)
	recipes.Delete("/:id/save", c.Middleware.UserContextMiddleware(), c.RecipeHandler.UnsaveRecipe)
}

func (c *Config) Grocery() {
	grocery := c.App.Group("/api/v1/grocery", c.Middleware.UserContextMiddleware())

	// Fixed paths go before /:id so Fiber does not swallow them.
	grocery.Delete("/purchased", c.GroceryHandler.ClearPurchased)
	grocery.Post("/generate/:recipe_id", c.GroceryHandler.GenerateFromRecipe)
	grocery.Post("/checkout", c.GroceryHandler.Checkout)

	// Basic CRUD operations
	grocery.Get("", c.GroceryHandler.GetEntries)
	grocery.Post("", c.GroceryHandler.AddEntry)
	grocery.Patch("/:id", c.GroceryHandler.UpdateEntry)
	grocery.Delete("/:id", c.GroceryHandler.DeleteEntry)
	grocery.Put("/:id/toggle", c.GroceryHandler.TogglePurchased)
}
