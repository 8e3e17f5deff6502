package handlers

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"pantry-pilot/domain"
	"pantry-pilot/internal/api/presenters"
	"pantry-pilot/pkg/grocery"
)

type (
	GroceryHandler interface {
		GetEntries(c *fiber.Ctx) error
		AddEntry(c *fiber.Ctx) error
		UpdateEntry(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		TogglePurchased(c *fiber.Ctx) error
		ClearPurchased(c *fiber.Ctx) error
		GenerateFromRecipe(c *fiber.Ctx) error
		Checkout(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) GetEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	filter := new(domain.GroceryListFilter)

	if err := c.QueryParser(filter); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, err)
	}

	res, err := h.groceryService.GetEntries(c.Context(), userID, *filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceryEntries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryEntries)
}

func (h *groceryHandler) AddEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddGroceryEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryEntry, err)
	}

	res, err := h.groceryService.AddEntry(c.Context(), userID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddGroceryEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGroceryEntry)
}

func (h *groceryHandler) UpdateEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	id := c.Params("id")
	req := new(domain.UpdateGroceryEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryEntry, err)
	}

	res, err := h.groceryService.UpdateEntry(c.Context(), id, userID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateGroceryEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateGroceryEntry)
}

func (h *groceryHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	id := c.Params("id")

	if err := h.groceryService.DeleteEntry(c.Context(), id, userID); err != nil {
		if errors.Is(err, domain.ErrGroceryEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteGroceryEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteGroceryEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGroceryEntry)
}

func (h *groceryHandler) TogglePurchased(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	id := c.Params("id")

	res, err := h.groceryService.TogglePurchased(c.Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedTogglePurchased, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTogglePurchased, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessTogglePurchased)
}

func (h *groceryHandler) ClearPurchased(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.ClearPurchased(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearPurchased, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearPurchased)
}

func (h *groceryHandler) GenerateFromRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("recipe_id")

	res, err := h.groceryService.GenerateFromRecipe(c.Context(), userID, recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGenerateFromRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateFromRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateFromRecipe)
}

func (h *groceryHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.Checkout(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckout)
}
