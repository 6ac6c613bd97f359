package config

import (
	"os"

	"smart-recipes-backend/internal/api/handlers"
	"smart-recipes-backend/internal/api/routes"
	"smart-recipes-backend/internal/middleware"
	"smart-recipes-backend/internal/utils"
	"smart-recipes-backend/pkg/done"
	"smart-recipes-backend/pkg/favorite"
	"smart-recipes-backend/pkg/jwt"
	"smart-recipes-backend/pkg/meal"
	"smart-recipes-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up request logging
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
		Output:     file,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)
	doneRepository := done.NewDoneRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, userRepository)
	doneService := done.NewDoneService(doneRepository, userRepository)
	mealService := meal.NewMealService()

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)
	doneHandler := handlers.NewDoneHandler(doneService, validator)
	mealHandler := handlers.NewMealHandler(mealService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		FavoriteHandler: favoriteHandler,
		DoneHandler:     doneHandler,
		MealHandler:     mealHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
