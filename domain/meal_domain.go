package domain

import (
	"encoding/json"
	"errors"
)

var (
	MessageSuccessGetMeals      = "success get meals"
	MessageSuccessGetCategories = "success get meal categories"
	MessageSuccessGetMealDetail = "success get meal detail"

	MessageFailedGetMeals        = "failed to get meals"
	MessageFailedGetCategories   = "failed to get meal categories"
	MessageFailedGetMealDetail   = "failed to get meal detail"
	MessageFailedMissingCategory = "category query parameter is required"

	ErrUpstreamUnavailable = errors.New("recipe provider unavailable")
)

// MealEnvelope is the wrapper TheMealDB puts around every response. Meal
// objects are forwarded untouched; the upstream schema has dozens of dynamic
// fields (strIngredient1..20) that clients consume directly.
type MealEnvelope struct {
	Meals []json.RawMessage `json:"meals"`
}
