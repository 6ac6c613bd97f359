package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	MessageSuccessGetFavorites   = "success get favorite recipes"
	MessageSuccessAddFavorite    = "favorite recipe added successfully"
	MessageSuccessRemoveFavorite = "favorite recipe removed successfully"
	MessageSuccessGetDoneRecipes = "success get done recipes"
	MessageSuccessAddDoneRecipe  = "done recipe added successfully"

	MessageFailedGetFavorites   = "failed to get favorite recipes"
	MessageFailedAddFavorite    = "failed to add favorite recipe"
	MessageFailedRemoveFavorite = "failed to remove favorite recipe"
	MessageFailedGetDoneRecipes = "failed to get done recipes"
	MessageFailedAddDoneRecipe  = "failed to add done recipe"

	ErrFavoriteAlreadyExists = errors.New("recipe already in favorites")
	ErrFavoriteNotFound      = errors.New("favorite recipe not found")
)

type (
	// TagList accepts both a JSON array of strings and a single
	// comma-joined string, the two shapes clients send.
	TagList []string

	RecipeSnapshot struct {
		RecipeID    string `json:"recipeId" validate:"required"`
		Type        string `json:"type"`
		Nationality string `json:"nationality"`
		Category    string `json:"category"`
		Name        string `json:"name"`
		Image       string `json:"image"`
	}

	AddFavoriteRequest struct {
		Email      string         `json:"email" validate:"required,email"`
		RecipeData RecipeSnapshot `json:"recipeData" validate:"required"`
	}

	DoneRecipeData struct {
		RecipeSnapshot
		Tags TagList `json:"tags"`
	}

	AddDoneRecipeRequest struct {
		Email      string         `json:"email" validate:"required,email"`
		RecipeData DoneRecipeData `json:"recipeData" validate:"required"`
	}

	FavoriteRecipeResponse struct {
		ID          string `json:"id"`
		RecipeID    string `json:"recipe_id"`
		Type        string `json:"type"`
		Nationality string `json:"nationality"`
		Category    string `json:"category"`
		Name        string `json:"name"`
		Image       string `json:"image"`
	}

	DoneRecipeResponse struct {
		ID          string    `json:"id"`
		RecipeID    string    `json:"recipe_id"`
		Type        string    `json:"type"`
		Nationality string    `json:"nationality"`
		Category    string    `json:"category"`
		Name        string    `json:"name"`
		Image       string    `json:"image"`
		DoneDate    time.Time `json:"done_date"`
		Tags        []string  `json:"tags"`
	}
)

func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*t = TagList{}
		return nil
	}
	*t = TagList{single}
	return nil
}
