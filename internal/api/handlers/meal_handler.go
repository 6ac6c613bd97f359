package handlers

import (
	"smart-recipes-backend/domain"
	"smart-recipes-backend/internal/api/presenters"
	"smart-recipes-backend/pkg/meal"

	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		SearchMeals(c *fiber.Ctx) error
		ListCategories(c *fiber.Ctx) error
		FilterByCategory(c *fiber.Ctx) error
		GetMealByID(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
	}
)

func NewMealHandler(mealService meal.MealService) MealHandler {
	return &mealHandler{
		mealService: mealService,
	}
}

func (h *mealHandler) SearchMeals(c *fiber.Ctx) error {
	term := c.Query("search", "")

	res, err := h.mealService.SearchMeals(c.Context(), term)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) ListCategories(c *fiber.Ctx) error {
	res, err := h.mealService.ListCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *mealHandler) FilterByCategory(c *fiber.Ctx) error {
	category := c.Query("category", "")
	if category == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMissingCategory, nil)
	}

	res, err := h.mealService.FilterByCategory(c.Context(), category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) GetMealByID(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := h.mealService.GetMealByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMealDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealDetail)
}
