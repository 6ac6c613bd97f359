package handlers

import (
	"errors"

	"smart-recipes-backend/domain"
	"smart-recipes-backend/internal/api/presenters"
	"smart-recipes-backend/pkg/favorite"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FavoriteHandler interface {
		GetFavorites(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
	}

	favoriteHandler struct {
		favoriteService favorite.FavoriteService
		validator       *validator.Validate
	}
)

func NewFavoriteHandler(favoriteService favorite.FavoriteService, validator *validator.Validate) FavoriteHandler {
	return &favoriteHandler{
		favoriteService: favoriteService,
		validator:       validator,
	}
}

func (h *favoriteHandler) GetFavorites(c *fiber.Ctx) error {
	email := c.Params("email")

	res, err := h.favoriteService.GetFavorites(c.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFavorites, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFavorites, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

func (h *favoriteHandler) AddFavorite(c *fiber.Ctx) error {
	req := new(domain.AddFavoriteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
	}

	res, err := h.favoriteService.AddFavorite(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddFavorite, err)
		case errors.Is(err, domain.ErrFavoriteAlreadyExists):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedAddFavorite, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFavorite, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFavorite)
}

func (h *favoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	email := c.Params("email")
	recipeID := c.Params("recipeId")

	if err := h.favoriteService.RemoveFavorite(c.Context(), email, recipeID); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrFavoriteNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveFavorite, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRemoveFavorite, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
