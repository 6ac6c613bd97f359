package handlers

import (
	"errors"

	"smart-recipes-backend/domain"
	"smart-recipes-backend/internal/api/presenters"
	"smart-recipes-backend/pkg/done"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DoneHandler interface {
		GetDoneRecipes(c *fiber.Ctx) error
		AddDoneRecipe(c *fiber.Ctx) error
	}

	doneHandler struct {
		doneService done.DoneService
		validator   *validator.Validate
	}
)

func NewDoneHandler(doneService done.DoneService, validator *validator.Validate) DoneHandler {
	return &doneHandler{
		doneService: doneService,
		validator:   validator,
	}
}

func (h *doneHandler) GetDoneRecipes(c *fiber.Ctx) error {
	email := c.Params("email")

	res, err := h.doneService.GetDoneRecipes(c.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetDoneRecipes, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDoneRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDoneRecipes)
}

func (h *doneHandler) AddDoneRecipe(c *fiber.Ctx) error {
	req := new(domain.AddDoneRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddDoneRecipe, err)
	}

	res, err := h.doneService.AddDoneRecipe(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddDoneRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddDoneRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddDoneRecipe)
}
