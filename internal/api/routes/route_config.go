package routes

import (
	"smart-recipes-backend/internal/api/handlers"
	"smart-recipes-backend/internal/middleware"
	"smart-recipes-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	FavoriteHandler handlers.FavoriteHandler
	DoneHandler     handlers.DoneHandler
	MealHandler     handlers.MealHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Meals()
	c.Favorites()
	c.DoneRecipes()
	c.GuestRoute()
}

func (c *Config) Auth() {
	login := c.App.Group("/login")
	{
		login.Post("/", c.UserHandler.Login)
		login.Post("/register", c.UserHandler.Register)
	}
}

func (c *Config) Meals() {
	meals := c.App.Group("/meals")
	{
		meals.Get("/", c.MealHandler.SearchMeals)
		meals.Get("/categories", c.MealHandler.ListCategories)
		meals.Get("/filter", c.MealHandler.FilterByCategory)
		// keep the id route last so it does not shadow the fixed paths
		meals.Get("/:id", c.MealHandler.GetMealByID)
	}
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/favorites", c.Middleware.AuthMiddleware(c.JWTService))
	{
		favorites.Get("/:email", c.FavoriteHandler.GetFavorites)
		favorites.Post("/", c.FavoriteHandler.AddFavorite)
		favorites.Delete("/:email/:recipeId", c.FavoriteHandler.RemoveFavorite)
	}
}

func (c *Config) DoneRecipes() {
	doneRecipes := c.App.Group("/done-recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		doneRecipes.Get("/:email", c.DoneHandler.GetDoneRecipes)
		doneRecipes.Post("/", c.DoneHandler.AddDoneRecipe)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Smart Recipes API is running"})
	})
}
